package detect

// Detection is the result of language detection. Detection failure is
// not an error: OK=false with Name "Unknown" is the sentinel, and
// translation proceeds with an "auto" source hint regardless.
type Detection struct {
	Code string `json:"code"`
	Name string `json:"name"`
	OK   bool   `json:"ok"`
}

// Unknown is the sentinel for undetectable text.
var Unknown = Detection{Name: "Unknown"}

// Detector guesses the language of a piece of text. Never fails.
type Detector interface {
	Detect(text string) Detection
}
