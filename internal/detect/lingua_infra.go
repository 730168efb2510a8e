package detect

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/Vovarama1992/voxlate/internal/language"
)

var linguaLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Hindi,
	lingua.Tamil,
}

// LinguaDetector is a process-local detector restricted to the
// registry languages. Build once, reuse for the process lifetime.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages...).
			Build(),
	}
}

func (d *LinguaDetector) Detect(text string) Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Unknown
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	return Detection{
		Code: code,
		Name: language.DisplayName(code),
		OK:   true,
	}
}
