package chat

import (
	"github.com/samber/lo"

	"healify/internal/disease"
)

// Replies holds the canned strings of a responder.
type Replies struct {
	Greeting          string
	GenericPrevention string
	GenericSymptoms   string
	Fallback          string
	SummaryPrompt     string

	// Label formats take the disease name.
	SymptomsLabel   string
	CausesLabel     string
	TreatmentLabel  string
	PreventionLabel string
}

// Lexicon is the keyword and reply table a Responder works from. Keywords
// added for a locale are layered over the English ones with Merge.
type Lexicon struct {
	Greetings []string
	Topics    map[disease.Topic][]string

	// DiseaseKeywords extends the registry chat keywords of each disease.
	DiseaseKeywords map[disease.ID][]string

	// Descriptions overrides the registry description in summaries.
	Descriptions map[disease.ID]string

	Replies Replies
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		Greetings: []string{"hello", "hi", "hey", "namaste"},
		Topics: map[disease.Topic][]string{
			disease.TopicSymptoms:   {"symptom", "sign", "feel", "effect", "identify"},
			disease.TopicCauses:     {"cause", "from", "get", "origin", "reason", "why"},
			disease.TopicTreatment:  {"treat", "cure", "remedy", "help", "solution", "manage"},
			disease.TopicPrevention: {"prevent", "avoid", "safe", "stop", "protect"},
		},
		DiseaseKeywords: map[disease.ID][]string{},
		Descriptions:    map[disease.ID]string{},
		Replies: Replies{
			Greeting:          "Hello there! How can I help you learn about waterborne diseases today?",
			GenericPrevention: "To prevent most waterborne diseases, always drink boiled or purified water, wash your hands thoroughly with soap, cook food properly, and avoid swallowing water from pools or lakes.",
			GenericSymptoms:   "Common symptoms for many waterborne diseases include diarrhea, vomiting, fever, and stomach cramps. For a more specific diagnosis, please use the 'Disease Prediction' tab or consult a doctor.",
			Fallback:          "I'm sorry, I don't have information on that. I can answer questions about the causes, symptoms, treatment, and prevention of diseases like Cholera, Typhoid, Hepatitis A, Giardiasis, and Gastroenteritis. Please try asking your question differently.",
			SummaryPrompt:     "Would you like to know about its causes, symptoms, treatment, or prevention?",
			SymptomsLabel:     "Symptoms of %s",
			CausesLabel:       "Causes of %s",
			TreatmentLabel:    "Treatment for %s",
			PreventionLabel:   "Prevention of %s",
		},
	}
}

// Merge returns a copy of l with the keywords of extra appended and every
// non-empty reply or description of extra taking precedence.
func (l Lexicon) Merge(extra Lexicon) Lexicon {
	out := Lexicon{
		Greetings:       lo.Uniq(append(append([]string(nil), l.Greetings...), extra.Greetings...)),
		Topics:          map[disease.Topic][]string{},
		DiseaseKeywords: map[disease.ID][]string{},
		Descriptions:    lo.Assign(l.Descriptions, lo.PickBy(extra.Descriptions, nonEmpty[disease.ID])),
		Replies:         l.Replies.merge(extra.Replies),
	}
	for _, topic := range disease.Topics() {
		out.Topics[topic] = lo.Uniq(append(append([]string(nil), l.Topics[topic]...), extra.Topics[topic]...))
	}
	for _, id := range lo.Uniq(append(lo.Keys(l.DiseaseKeywords), lo.Keys(extra.DiseaseKeywords)...)) {
		out.DiseaseKeywords[id] = lo.Uniq(append(append([]string(nil), l.DiseaseKeywords[id]...), extra.DiseaseKeywords[id]...))
	}
	return out
}

func nonEmpty[K comparable](_ K, v string) bool {
	return v != ""
}

func (r Replies) merge(extra Replies) Replies {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return Replies{
		Greeting:          pick(r.Greeting, extra.Greeting),
		GenericPrevention: pick(r.GenericPrevention, extra.GenericPrevention),
		GenericSymptoms:   pick(r.GenericSymptoms, extra.GenericSymptoms),
		Fallback:          pick(r.Fallback, extra.Fallback),
		SummaryPrompt:     pick(r.SummaryPrompt, extra.SummaryPrompt),
		SymptomsLabel:     pick(r.SymptomsLabel, extra.SymptomsLabel),
		CausesLabel:       pick(r.CausesLabel, extra.CausesLabel),
		TreatmentLabel:    pick(r.TreatmentLabel, extra.TreatmentLabel),
		PreventionLabel:   pick(r.PreventionLabel, extra.PreventionLabel),
	}
}

func (r Replies) label(topic disease.Topic) string {
	switch topic {
	case disease.TopicSymptoms:
		return r.SymptomsLabel
	case disease.TopicCauses:
		return r.CausesLabel
	case disease.TopicTreatment:
		return r.TreatmentLabel
	default:
		return r.PreventionLabel
	}
}
