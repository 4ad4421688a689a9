package entities

// Locale identifies a supported prompt language.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// Question is a single step of the application interview.
type Question struct {
	Prompt    string   // localized text shown to the applicant
	FieldName string   // column label of the answer in the output row
	Options   []string // ordered selectable labels, nil for free text
}

// MultiSelect reports whether the question expects numeric selections
// instead of a free-text answer.
func (q Question) MultiSelect() bool {
	return len(q.Options) > 0
}
