// Package prompt renders the fixed instruction templates sent to the
// generation endpoint.
package prompt

import "fmt"

// Kind selects one of the instruction templates.
type Kind string

const (
	// KindTranslate translates Text from SourceLang to TargetLang.
	KindTranslate Kind = "translate"
	// KindRespond answers Text in TargetLang.
	KindRespond Kind = "respond"
	// KindAnalyze reviews Translated against the original Text.
	KindAnalyze Kind = "analyze"
)

// Kinds lists every supported template kind.
var Kinds = []Kind{KindTranslate, KindRespond, KindAnalyze}

// Fields holds the caller-supplied values interpolated into a template.
// Each kind reads only the fields it needs; contents are not validated.
type Fields struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang,omitempty"`
	TargetLang string `json:"target_lang,omitempty"`
	Translated string `json:"translated,omitempty"`
}

// ParseKind converts a name such as "translate" into a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown prompt kind %q", name)
}

// Render builds the prompt text for kind. Identical inputs always produce
// identical output.
func Render(kind Kind, f Fields) (string, error) {
	switch kind {
	case KindTranslate:
		return fmt.Sprintf(translateTemplate, f.Text, f.SourceLang, f.TargetLang), nil
	case KindRespond:
		return fmt.Sprintf(respondTemplate, f.Text, f.TargetLang), nil
	case KindAnalyze:
		return fmt.Sprintf(analyzeTemplate, f.Text, f.Translated), nil
	default:
		return "", fmt.Errorf("unknown prompt kind %q", kind)
	}
}
