package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"healify/internal/chat"
	"healify/internal/disease"
)

func TestDefault_Loads(t *testing.T) {
	req := require.New(t)
	c := Default()
	for _, loc := range Supported() {
		req.Len(c.SymptomLabels(loc), 13, loc)
		for _, id := range disease.Default().IDs() {
			d := c.Disease(loc, id)
			req.NotEmpty(d.Name, "%s %s", loc, id)
			req.NotEmpty(d.Description, "%s %s", loc, id)
			req.NotEmpty(d.Remedies, "%s %s", loc, id)
		}
	}
}

func TestCatalog_TextFallsBackToEnglish(t *testing.T) {
	req := require.New(t)
	c := Default()

	req.Equal("Diarrhea Outbreak", c.Text(English, KeyOutbreakTitle))
	req.Equal("डायरिया का प्रकोप", c.Text(Hindi, KeyOutbreakTitle))

	// only English carries this key
	req.Equal("Please select at least one symptom for analysis.", c.Text(Bengali, KeyNoSymptoms))
	req.Equal("Please select at least one symptom for analysis.", c.Text("fr", KeyNoSymptoms))
	req.Equal("unknown_key", c.Text(Hindi, Key("unknown_key")))
}

func TestCatalog_SymptomLabels(t *testing.T) {
	req := require.New(t)
	c := Default()

	req.Equal("Dark colored urine", c.SymptomLabel(English, disease.DarkUrine))
	req.Equal("बुखार", c.SymptomLabel(Hindi, disease.Fever))
	req.Equal("জ্বৰ", c.SymptomLabel(Assamese, disease.Fever))
	req.Equal("জ্বর", c.SymptomLabel(Bengali, disease.Fever))

	labels := c.SymptomLabels(Hindi)
	req.Equal(disease.Fever, labels[0].Symptom)
	req.Equal("बुखार", labels[0].Label)
	req.Equal(disease.WeightLoss, labels[12].Symptom)
}

func TestCatalog_ParseSymptom(t *testing.T) {
	c := Default()
	tests := []struct {
		name     string
		locale   Locale
		label    string
		expected disease.Symptom
		ok       bool
	}{
		{"english label", English, "Abdominal Pain", disease.AbdominalPain, true},
		{"case and spaces", English, "  dark COLORED urine ", disease.DarkUrine, true},
		{"hindi label", Hindi, "पीलिया", disease.Jaundice, true},
		{"assamese label", Assamese, "ডায়েৰিয়া", disease.Diarrhea, true},
		{"bengali label", Bengali, "ডায়রিয়া", disease.Diarrhea, true},
		{"english label in another locale", Bengali, "Nausea", disease.Nausea, true},
		{"canonical id", Hindi, "rose_spots", disease.RoseSpots, true},
		{"unknown", English, "Sneezing", "", false},
		{"label of another locale", English, "बुखार", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ParseSymptom(tt.locale, tt.label)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestCatalog_Disease(t *testing.T) {
	req := require.New(t)
	c := Default()

	req.Equal("Gastroenteritis (Diarrhea)", c.Disease(English, disease.Gastroenteritis).Name)
	req.Equal("हैजा", c.Disease(Hindi, disease.Cholera).Name)
	req.Len(c.Disease(Assamese, disease.Typhoid).Remedies, 3)

	// unsupported locale resolves to English
	req.Equal("Cholera", c.Disease("fr", disease.Cholera).Name)
}

func TestCatalog_Gender(t *testing.T) {
	req := require.New(t)
	c := Default()
	req.Equal("महिला", c.Gender(Hindi, "female"))
	req.Equal("Other", c.Gender("fr", "other"))
	req.Equal("unknown", c.Gender(English, "unknown"))
}

func TestCatalog_ChatLexicon(t *testing.T) {
	req := require.New(t)
	c := Default()

	r, err := chat.NewResponder(disease.Default(), c.ChatLexicon(Hindi))
	req.NoError(err)

	cholera, _ := disease.Default().Get(disease.Cholera)
	req.Equal("Causes of Cholera: "+cholera.Info[disease.TopicCauses], r.Respond("हैजा का कारण क्या है"))
	req.Contains(r.Respond("हैजा"), "विब्रियो कोलेरी")
	req.Contains(r.Respond("कुछ और बताइए"), "मुझे खेद है")

	en, err := chat.NewResponder(disease.Default(), c.ChatLexicon(English))
	req.NoError(err)
	req.Equal(chat.DefaultLexicon().Replies.Fallback, en.Respond("xyz nonsense"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "locales: [\n"},
		{"english missing", "locales:\n  hi:\n    name: x\n"},
		{"unsupported locale", "locales:\n  fr:\n    name: x\n"},
		{"unknown symptom", "locales:\n  en:\n    symptoms:\n      sneezing: Sneezing\n"},
		{"unknown disease", "locales:\n  en:\n    diseases:\n      measles:\n        name: Measles\n"},
		{"duplicate label", "locales:\n  en:\n    symptoms:\n      fever: Fever\n      headache: fever\n"},
		{"incomplete english", "locales:\n  en:\n    name: English\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
