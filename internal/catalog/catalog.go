// Package catalog holds the static bilingual question sets for the job
// application interview. The catalog is built once at process start and
// treated as immutable afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
)

var (
	experienceOptions = []string{
		"Housekeeping",
		"Houseman",
		"Dishwasher",
		"Prep Cook",
		"Line cook",
		"Server",
		"Pool attendant / Host",
		"Other",
	}
	shiftOptions     = []string{"AM", "PM", "Flexible", "Overnight"}
	languageOptions  = []string{"English", "Spanish", "Bilingual"}
	transportOptions = []string{"Own transportation", "Public Transportation"}
)

// Catalog maps each supported locale to its ordered question set. Both
// sets have the same length and per-index field names; only the prompt
// text differs.
type Catalog map[entities.Locale][]entities.Question

// New builds the bilingual question catalog.
func New() Catalog {
	return Catalog{
		entities.LocaleEnglish: englishQuestions(),
		entities.LocaleSpanish: spanishQuestions(),
	}
}

// Questions returns the question set for the given locale.
func (c Catalog) Questions(locale entities.Locale) []entities.Question {
	return c[locale]
}

// Len returns the number of questions per locale.
func (c Catalog) Len() int {
	return len(c[entities.LocaleEnglish])
}

func englishQuestions() []entities.Question {
	return []entities.Question{
		{
			Prompt:    "Let's start. What is your *First Name*?",
			FieldName: "First Name",
		},
		{
			Prompt:    "Thanks. And what is your *Last Name*?",
			FieldName: "Last Name",
		},
		{
			Prompt:    "What is your *Phone Number*?",
			FieldName: "Phone",
		},
		{
			Prompt:    withOptions("Select your *Previous Experience* (You can pick multiple, e.g., 1, 3):", experienceOptions),
			FieldName: "Experience",
			Options:   experienceOptions,
		},
		{
			Prompt:    withOptions("What position do you want to *Apply For*? (Select numbers)", experienceOptions),
			FieldName: "Applied Position",
			Options:   experienceOptions,
		},
		{
			Prompt:    withOptions("What *Shift* are you available to work?", shiftOptions),
			FieldName: "Shift",
			Options:   shiftOptions,
		},
		{
			Prompt:    withOptions("What *Language* do you speak?", languageOptions),
			FieldName: "Language",
			Options:   languageOptions,
		},
		{
			Prompt:    withOptions("What's your *Transportation* method?", transportOptions),
			FieldName: "Transport",
			Options:   transportOptions,
		},
		{
			Prompt:    "When can you *Start*?",
			FieldName: "Start Date",
		},
	}
}

func spanishQuestions() []entities.Question {
	return []entities.Question{
		{
			Prompt:    "Empecemos. ¿Cuál es tu *Primer Nombre*?",
			FieldName: "First Name",
		},
		{
			Prompt:    "Gracias. ¿Y tu *Apellido*?",
			FieldName: "Last Name",
		},
		{
			Prompt:    "¿Cuál es tu número de *Teléfono*?",
			FieldName: "Phone",
		},
		{
			Prompt:    withOptions("Selecciona tu *Experiencia Previa* (Puedes elegir varias, ej. 1, 3):", experienceOptions),
			FieldName: "Experience",
			Options:   experienceOptions,
		},
		{
			Prompt:    withOptions("¿A qué posición quieres *Aplicar*? (Selecciona números)", experienceOptions),
			FieldName: "Applied Position",
			Options:   experienceOptions,
		},
		{
			Prompt:    withOptions("¿Qué *Turno* puedes trabajar?", shiftOptions),
			FieldName: "Shift",
			Options:   shiftOptions,
		},
		{
			Prompt:    withOptions("¿Qué *Idioma* hablas?", languageOptions),
			FieldName: "Language",
			Options:   languageOptions,
		},
		{
			Prompt:    withOptions("¿Cuál es tu método de *Transporte*?", transportOptions),
			FieldName: "Transport",
			Options:   transportOptions,
		},
		{
			Prompt:    "¿Cuándo puedes *Comenzar*?",
			FieldName: "Start Date",
		},
	}
}

// withOptions appends a numbered option list to a prompt so the
// applicant can answer by index.
func withOptions(prompt string, options []string) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	for i, opt := range options {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, opt))
	}
	return sb.String()
}
