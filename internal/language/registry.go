package language

// Language is one entry of the fixed registry: an ISO-639-1 code, the
// name shown in the UI selector, and the synthesis voice identifier.
type Language struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Voice string `json:"-"`
}

// FallbackCode is the voice every unmapped code degrades to.
const FallbackCode = "en"

// registry order is the UI selector order.
var registry = []Language{
	{Code: "en", Name: "English", Voice: "en"},
	{Code: "es", Name: "Spanish", Voice: "es"},
	{Code: "fr", Name: "French", Voice: "fr"},
	{Code: "de", Name: "German", Voice: "de"},
	{Code: "it", Name: "Italian", Voice: "it"},
	{Code: "pt", Name: "Portuguese", Voice: "pt"},
	{Code: "ru", Name: "Russian", Voice: "ru"},
	{Code: "zh", Name: "Chinese", Voice: "zh"},
	{Code: "ja", Name: "Japanese", Voice: "ja"},
	{Code: "hi", Name: "Hindi", Voice: "hi"},
	{Code: "ta", Name: "Tamil", Voice: "ta"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(registry))
	for _, l := range registry {
		m[l.Code] = l
	}
	return m
}()

// All returns the registry in stable selector order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registry entry for code.
func Lookup(code string) (Language, bool) {
	l, ok := byCode[code]
	return l, ok
}

// DisplayName returns the display name for code, or the code itself
// when it is not registered.
func DisplayName(code string) string {
	if l, ok := byCode[code]; ok {
		return l.Name
	}
	return code
}

// VoiceFor maps a language code to its synthesis voice, falling back
// to the "en" voice for unmapped codes.
func VoiceFor(code string) string {
	if l, ok := byCode[code]; ok {
		return l.Voice
	}
	return byCode[FallbackCode].Voice
}
