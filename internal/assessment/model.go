package assessment

import (
	"time"

	"github.com/google/uuid"

	"healify/internal/disease"
	"healify/internal/i18n"
)

// Form is the patient symptom form. Symptoms are labels in the form's
// language, in English, or canonical ids.
type Form struct {
	Name     string   `json:"name" validate:"required"`
	Age      int      `json:"age" validate:"gte=0,lte=130"`
	Gender   string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Location string   `json:"location"`
	Symptoms []string `json:"symptoms" validate:"dive,required"`
	Lang     string   `json:"lang"`
}

type Patient struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`
}

// Match is a matcher result rendered in one language.
type Match struct {
	Disease     disease.ID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Remedies    []string   `json:"remedies"`
	Score       int        `json:"score"`
}

// Fallback is shown when no disease passes the threshold.
type Fallback struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Remedy      string `json:"remedy"`
}

type Outcome struct {
	Results  []Match   `json:"results"`
	Fallback *Fallback `json:"fallback,omitempty"`
}

type Assessment struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Locale    i18n.Locale       `json:"lang" db:"locale"`
	Patient   Patient           `json:"patient" db:"patient"`
	Symptoms  []disease.Symptom `json:"symptoms" db:"symptoms"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`

	Outcome `db:"results"`
}

func (a *Assessment) clone() *Assessment {
	out := *a
	out.Symptoms = append([]disease.Symptom(nil), a.Symptoms...)
	out.Results = make([]Match, len(a.Results))
	for i, m := range a.Results {
		m.Remedies = append([]string(nil), m.Remedies...)
		out.Results[i] = m
	}
	if a.Fallback != nil {
		fb := *a.Fallback
		out.Fallback = &fb
	}
	return &out
}
