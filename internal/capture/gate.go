package capture

import "time"

// utterance accumulates microphone frames and decides when a recording
// is complete. It is driven by the device loop in MicRecorder and by
// synthetic frames in tests.
type utterance struct {
	sampleRate   int
	threshold    float64 // mean absolute amplitude, normalized to 0..1
	onsetTimeout time.Duration
	maxUtterance time.Duration
	tailSilence  time.Duration

	started bool
	waited  time.Duration
	voiced  time.Duration
	tail    time.Duration
	samples []int
}

func newUtterance(sampleRate int, threshold float64, onsetTimeout, maxUtterance, tailSilence time.Duration) *utterance {
	return &utterance{
		sampleRate:   sampleRate,
		threshold:    threshold,
		onsetTimeout: onsetTimeout,
		maxUtterance: maxUtterance,
		tailSilence:  tailSilence,
	}
}

// feed consumes one frame of mono s16 samples. It returns done=true when
// the utterance is complete (trailing silence or the utterance cap), and
// ErrNoSpeech when the onset timeout expires before anything crosses the
// gate.
func (u *utterance) feed(frame []int16) (bool, error) {
	dur := time.Duration(len(frame)) * time.Second / time.Duration(u.sampleRate)
	loud := meanAbs(frame) >= u.threshold

	if !u.started {
		if !loud {
			u.waited += dur
			if u.waited >= u.onsetTimeout {
				return false, ErrNoSpeech
			}
			return false, nil
		}
		u.started = true
	}

	for _, s := range frame {
		u.samples = append(u.samples, int(s))
	}
	u.voiced += dur

	if loud {
		u.tail = 0
	} else {
		u.tail += dur
		if u.tail >= u.tailSilence {
			return true, nil
		}
	}

	return u.voiced >= u.maxUtterance, nil
}

func meanAbs(frame []int16) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum float64
	for _, s := range frame {
		v := float64(s)
		if v < 0 {
			v = -v
		}
		sum += v
	}
	return sum / float64(len(frame)) / 32768.0
}
