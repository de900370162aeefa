package chat

import (
	"fmt"
	"strings"

	"healify/internal/disease"
)

type topicMatcher struct {
	topic disease.Topic
	set   *KeywordSet
}

type diseaseMatcher struct {
	disease     disease.Disease
	description string
	set         *KeywordSet
}

// Responder answers free-text questions about the diseases of a registry by
// ordered keyword tests. It keeps no state between calls.
type Responder struct {
	greetings *KeywordSet
	topics    []topicMatcher
	diseases  []diseaseMatcher
	replies   Replies

	genericPrevention *KeywordSet
	genericSymptoms   *KeywordSet
}

func NewResponder(registry *disease.Registry, lex Lexicon) (*Responder, error) {
	greetings, err := NewKeywordSet(lex.Greetings...)
	if err != nil {
		return nil, fmt.Errorf("greeting keywords: %w", err)
	}

	r := &Responder{greetings: greetings, replies: lex.Replies}

	for _, topic := range disease.Topics() {
		set, err := NewKeywordSet(lex.Topics[topic]...)
		if err != nil {
			return nil, fmt.Errorf("%s keywords: %w", topic, err)
		}
		r.topics = append(r.topics, topicMatcher{topic: topic, set: set})
		switch topic {
		case disease.TopicPrevention:
			r.genericPrevention = set
		case disease.TopicSymptoms:
			r.genericSymptoms = set
		}
	}

	for _, d := range registry.All() {
		keywords := append(d.ChatKeywords, lex.DiseaseKeywords[d.ID]...)
		set, err := NewKeywordSet(keywords...)
		if err != nil {
			return nil, fmt.Errorf("%s keywords: %w", d.ID, err)
		}
		description := d.Description
		if override := lex.Descriptions[d.ID]; override != "" {
			description = override
		}
		r.diseases = append(r.diseases, diseaseMatcher{disease: d, description: description, set: set})
	}
	return r, nil
}

// Respond classifies message and returns the canned answer. The first
// disease in registry order whose keywords appear wins; later ones are not
// considered.
func (r *Responder) Respond(message string) string {
	text := strings.ToLower(message)

	if r.greetings.Matches(text) {
		return r.replies.Greeting
	}

	for _, dm := range r.diseases {
		if !dm.set.Matches(text) {
			continue
		}
		for _, tm := range r.topics {
			if tm.set.Matches(text) {
				label := fmt.Sprintf(r.replies.label(tm.topic), dm.disease.Name)
				return label + ": " + dm.disease.Info[tm.topic]
			}
		}
		return fmt.Sprintf("%s: %s %s", dm.disease.Name, dm.description, r.replies.SummaryPrompt)
	}

	if r.genericPrevention.Matches(text) {
		return r.replies.GenericPrevention
	}
	if r.genericSymptoms.Matches(text) {
		return r.replies.GenericSymptoms
	}
	return r.replies.Fallback
}
