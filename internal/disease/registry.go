package disease

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDisease = errors.New("invalid disease")

// Registry is the immutable table of known diseases. It keeps insertion
// order, which is the iteration order both engines rely on.
type Registry struct {
	diseases []Disease
	index    map[ID]int
}

func NewRegistry(diseases ...Disease) (*Registry, error) {
	r := &Registry{
		diseases: make([]Disease, 0, len(diseases)),
		index:    make(map[ID]int, len(diseases)),
	}
	for _, d := range diseases {
		if err := validate(d); err != nil {
			return nil, err
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidDisease, d.ID)
		}
		c := d.clone()
		for i, k := range c.ChatKeywords {
			c.ChatKeywords[i] = strings.ToLower(k)
		}
		r.index[d.ID] = len(r.diseases)
		r.diseases = append(r.diseases, c)
	}
	return r, nil
}

func validate(d Disease) error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDisease)
	}
	if len(d.Symptoms) == 0 {
		return fmt.Errorf("%w: %s has no symptoms", ErrInvalidDisease, d.ID)
	}
	for _, s := range d.Symptoms {
		if !s.Valid() {
			return fmt.Errorf("%w: %s has unknown symptom %q", ErrInvalidDisease, d.ID, s)
		}
	}
	if len(d.ChatKeywords) == 0 {
		return fmt.Errorf("%w: %s has no chat keywords", ErrInvalidDisease, d.ID)
	}
	for _, k := range d.ChatKeywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: %s has a blank chat keyword", ErrInvalidDisease, d.ID)
		}
	}
	for _, t := range Topics() {
		if d.Info[t] == "" {
			return fmt.Errorf("%w: %s has no %s text", ErrInvalidDisease, d.ID, t)
		}
	}
	return nil
}

// All returns copies of every disease in registry order.
func (r *Registry) All() []Disease {
	out := make([]Disease, len(r.diseases))
	for i, d := range r.diseases {
		out[i] = d.clone()
	}
	return out
}

func (r *Registry) Get(id ID) (Disease, bool) {
	i, ok := r.index[id]
	if !ok {
		return Disease{}, false
	}
	return r.diseases[i].clone(), true
}

func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.diseases))
	for i, d := range r.diseases {
		out[i] = d.ID
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.diseases)
}
