package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"healify/internal/chat"
	"healify/internal/disease"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Key names a UI text.
type Key string

const (
	KeyInitialGreeting      Key = "initial_greeting"
	KeyNoDiseaseTitle       Key = "no_disease_title"
	KeyNoDiseaseDescription Key = "no_disease_description"
	KeyNoDiseaseRemedy      Key = "no_disease_remedy"
	KeyOutbreakTitle        Key = "outbreak_title"
	KeyMatchScore           Key = "match_score"
	KeyPredictionTitle      Key = "prediction_title"
	KeyNoSymptoms           Key = "no_symptoms"
	KeyWaterError           Key = "water_error"
)

var requiredKeys = []Key{
	KeyInitialGreeting, KeyNoDiseaseTitle, KeyNoDiseaseDescription, KeyNoDiseaseRemedy,
	KeyOutbreakTitle, KeyMatchScore, KeyPredictionTitle, KeyNoSymptoms, KeyWaterError,
}

type catalogFile struct {
	Locales map[Locale]localeFile `yaml:"locales"`
}

type localeFile struct {
	Name     string                 `yaml:"name"`
	UI       map[string]string      `yaml:"ui"`
	Symptoms map[string]string      `yaml:"symptoms"`
	Genders  map[string]string      `yaml:"genders"`
	Diseases map[string]DiseaseText `yaml:"diseases"`
	Chat     chatFile               `yaml:"chat"`
}

type chatFile struct {
	Greetings []string            `yaml:"greetings"`
	Topics    map[string][]string `yaml:"topics"`
	Diseases  map[string][]string `yaml:"diseases"`
	Replies   map[string]string   `yaml:"replies"`
}

// DiseaseText is the localized presentation of a disease.
type DiseaseText struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Remedies    []string `yaml:"remedies" json:"remedies"`
}

// SymptomLabel pairs a canonical symptom with its label in one locale.
type SymptomLabel struct {
	Symptom disease.Symptom `json:"id"`
	Label   string          `json:"label"`
}

// Catalog is the read-only table of localized texts. Every lookup falls
// back to English, then to the key itself.
type Catalog struct {
	locales map[Locale]localeFile
	labels  map[Locale]map[string]disease.Symptom
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogYAML)
		if err != nil {
			panic("i18n: embedded catalog is invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		locales: map[Locale]localeFile{},
		labels:  map[Locale]map[string]disease.Symptom{},
	}
	for loc, lf := range file.Locales {
		if !loc.Supported() {
			return nil, fmt.Errorf("%w: unsupported locale %q", ErrInvalidCatalog, loc)
		}
		labels, err := indexLabels(loc, lf.Symptoms)
		if err != nil {
			return nil, err
		}
		for id := range lf.Diseases {
			if _, ok := disease.Default().Get(disease.ID(id)); !ok {
				return nil, fmt.Errorf("%w: %s: unknown disease %q", ErrInvalidCatalog, loc, id)
			}
		}
		c.locales[loc] = lf
		c.labels[loc] = labels
	}

	if err := c.checkEnglish(); err != nil {
		return nil, err
	}
	return c, nil
}

func indexLabels(loc Locale, symptoms map[string]string) (map[string]disease.Symptom, error) {
	out := make(map[string]disease.Symptom, len(symptoms))
	for id, label := range symptoms {
		s := disease.Symptom(id)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %s: unknown symptom %q", ErrInvalidCatalog, loc, id)
		}
		key := normalize(label)
		if key == "" {
			return nil, fmt.Errorf("%w: %s: blank label for %q", ErrInvalidCatalog, loc, id)
		}
		if other, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: %s: label %q used by %s and %s", ErrInvalidCatalog, loc, label, other, s)
		}
		out[key] = s
	}
	return out, nil
}

func (c *Catalog) checkEnglish() error {
	en, ok := c.locales[English]
	if !ok {
		return fmt.Errorf("%w: english locale missing", ErrInvalidCatalog)
	}
	for _, k := range requiredKeys {
		if en.UI[string(k)] == "" {
			return fmt.Errorf("%w: en: missing ui key %q", ErrInvalidCatalog, k)
		}
	}
	for _, s := range disease.AllSymptoms() {
		if en.Symptoms[string(s)] == "" {
			return fmt.Errorf("%w: en: missing symptom %q", ErrInvalidCatalog, s)
		}
	}
	for _, id := range disease.Default().IDs() {
		d := en.Diseases[string(id)]
		if d.Name == "" || d.Description == "" || len(d.Remedies) == 0 {
			return fmt.Errorf("%w: en: incomplete disease %q", ErrInvalidCatalog, id)
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *Catalog) lookup(loc Locale, get func(localeFile) string) string {
	if lf, ok := c.locales[loc]; ok {
		if v := get(lf); v != "" {
			return v
		}
	}
	return get(c.locales[English])
}

// Text returns the UI text for key.
func (c *Catalog) Text(loc Locale, key Key) string {
	v := c.lookup(loc, func(lf localeFile) string { return lf.UI[string(key)] })
	if v == "" {
		return string(key)
	}
	return v
}

// LocaleName is the endonym shown in the language picker.
func (c *Catalog) LocaleName(loc Locale) string {
	if lf, ok := c.locales[loc]; ok && lf.Name != "" {
		return lf.Name
	}
	return string(loc)
}

func (c *Catalog) SymptomLabel(loc Locale, s disease.Symptom) string {
	v := c.lookup(loc, func(lf localeFile) string { return lf.Symptoms[string(s)] })
	if v == "" {
		return string(s)
	}
	return v
}

// SymptomLabels lists every symptom with its label, in display order.
func (c *Catalog) SymptomLabels(loc Locale) []SymptomLabel {
	return lo.Map(disease.AllSymptoms(), func(s disease.Symptom, _ int) SymptomLabel {
		return SymptomLabel{Symptom: s, Label: c.SymptomLabel(loc, s)}
	})
}

// ParseSymptom translates a label back to its canonical symptom. The label
// may be in loc, in English, or the canonical id itself.
func (c *Catalog) ParseSymptom(loc Locale, label string) (disease.Symptom, bool) {
	key := normalize(label)
	if s, ok := c.labels[loc][key]; ok {
		return s, true
	}
	if s, ok := c.labels[English][key]; ok {
		return s, true
	}
	if s := disease.Symptom(key); s.Valid() {
		return s, true
	}
	return "", false
}

func (c *Catalog) Gender(loc Locale, gender string) string {
	v := c.lookup(loc, func(lf localeFile) string { return lf.Genders[gender] })
	if v == "" {
		return gender
	}
	return v
}

// Disease resolves each field separately, so a locale may translate only
// the name.
func (c *Catalog) Disease(loc Locale, id disease.ID) DiseaseText {
	get := func(lf localeFile) DiseaseText { return lf.Diseases[string(id)] }
	out := DiseaseText{
		Name:        c.lookup(loc, func(lf localeFile) string { return get(lf).Name }),
		Description: c.lookup(loc, func(lf localeFile) string { return get(lf).Description }),
	}
	if lf, ok := c.locales[loc]; ok && len(get(lf).Remedies) > 0 {
		out.Remedies = append([]string(nil), get(lf).Remedies...)
	} else {
		out.Remedies = append([]string(nil), get(c.locales[English]).Remedies...)
	}
	if out.Name == "" {
		out.Name = string(id)
	}
	return out
}

// ChatLexicon layers the keywords and replies of loc over the English
// lexicon. Summaries use the localized disease descriptions.
func (c *Catalog) ChatLexicon(loc Locale) chat.Lexicon {
	extra := chat.Lexicon{
		Topics:          map[disease.Topic][]string{},
		DiseaseKeywords: map[disease.ID][]string{},
		Descriptions:    map[disease.ID]string{},
	}
	for _, id := range disease.Default().IDs() {
		extra.Descriptions[id] = c.Disease(loc, id).Description
	}

	lf, ok := c.locales[loc]
	if ok && loc != English {
		extra.Greetings = lf.Chat.Greetings
		for topic, words := range lf.Chat.Topics {
			extra.Topics[disease.Topic(topic)] = words
		}
		for id, words := range lf.Chat.Diseases {
			extra.DiseaseKeywords[disease.ID(id)] = words
		}
		r := lf.Chat.Replies
		extra.Replies = chat.Replies{
			Greeting:          r["greeting"],
			GenericPrevention: r["generic_prevention"],
			GenericSymptoms:   r["generic_symptoms"],
			Fallback:          r["fallback"],
			SummaryPrompt:     r["summary_prompt"],
			SymptomsLabel:     r["symptoms_label"],
			CausesLabel:       r["causes_label"],
			TreatmentLabel:    r["treatment_label"],
			PreventionLabel:   r["prevention_label"],
		}
	}
	return chat.DefaultLexicon().Merge(extra)
}
