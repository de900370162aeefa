package disease

// ID is the stable key of a disease in the registry.
type ID string

const (
	HepatitisA      ID = "hepatitisA"
	Cholera         ID = "cholera"
	Gastroenteritis ID = "gastroenteritis"
	Typhoid         ID = "typhoid"
	Giardiasis      ID = "giardiasis"
	Crypto          ID = "crypto"
)

// Symptom is a canonical clinical sign. Locale labels are translated to it
// before anything in this package or the engines sees them.
type Symptom string

const (
	Fever         Symptom = "fever"
	Diarrhea      Symptom = "diarrhea"
	Vomiting      Symptom = "vomiting"
	AbdominalPain Symptom = "abdominal_pain"
	Dehydration   Symptom = "dehydration"
	Headache      Symptom = "headache"
	Fatigue       Symptom = "fatigue"
	Nausea        Symptom = "nausea"
	Jaundice      Symptom = "jaundice"
	DarkUrine     Symptom = "dark_urine"
	RoseSpots     Symptom = "rose_spots"
	Bloating      Symptom = "bloating"
	WeightLoss    Symptom = "weight_loss"
)

var allSymptoms = []Symptom{
	Fever, Diarrhea, Vomiting, AbdominalPain, Dehydration, Headache, Fatigue,
	Nausea, Jaundice, DarkUrine, RoseSpots, Bloating, WeightLoss,
}

// AllSymptoms returns every canonical symptom in display order.
func AllSymptoms() []Symptom {
	out := make([]Symptom, len(allSymptoms))
	copy(out, allSymptoms)
	return out
}

// Valid reports whether s is one of the canonical symptoms.
func (s Symptom) Valid() bool {
	for _, known := range allSymptoms {
		if s == known {
			return true
		}
	}
	return false
}

// Topic is a kind of informational text held for each disease.
type Topic string

const (
	TopicCauses     Topic = "causes"
	TopicSymptoms   Topic = "symptoms"
	TopicTreatment  Topic = "treatment"
	TopicPrevention Topic = "prevention"
)

// Topics lists the informational topics in the order the chat responder
// classifies intent.
func Topics() []Topic {
	return []Topic{TopicSymptoms, TopicCauses, TopicTreatment, TopicPrevention}
}

type Disease struct {
	ID          ID
	Name        string
	Description string

	// Symptoms is the defining clinical profile used for matching. Overlap
	// with other diseases is expected.
	Symptoms []Symptom

	// ChatKeywords are lower-case substrings that identify the disease in
	// free text.
	ChatKeywords []string

	Info     map[Topic]string
	Remedies []string
}

// HasSymptom reports whether s belongs to the defining symptom set.
func (d Disease) HasSymptom(s Symptom) bool {
	for _, own := range d.Symptoms {
		if own == s {
			return true
		}
	}
	return false
}

func (d Disease) clone() Disease {
	out := d
	out.Symptoms = append([]Symptom(nil), d.Symptoms...)
	out.ChatKeywords = append([]string(nil), d.ChatKeywords...)
	out.Remedies = append([]string(nil), d.Remedies...)
	out.Info = make(map[Topic]string, len(d.Info))
	for k, v := range d.Info {
		out.Info[k] = v
	}
	return out
}
