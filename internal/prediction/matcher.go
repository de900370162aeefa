package prediction

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"healify/internal/disease"
)

const (
	// MinScore is exclusive: a disease must score above it to be reported.
	MinScore = 20
	// MaxResults caps the ranked list.
	MaxResults = 3
)

// Result is one ranked disease for a symptom selection.
type Result struct {
	Disease disease.Disease
	Score   int
}

// Matcher scores diseases by how much of their defining symptom set a
// selection covers. It holds a snapshot of the registry and is safe for
// concurrent use.
type Matcher struct {
	registry *disease.Registry
	diseases []disease.Disease
}

func NewMatcher(registry *disease.Registry) *Matcher {
	return &Matcher{registry: registry, diseases: registry.All()}
}

// Match ranks the diseases covered by selected. The score of a disease is the
// rounded percentage of its own symptom set present in the selection, so a
// small defining set can outrank a large one with more hits. Ties keep
// registry order.
func (m *Matcher) Match(selected []disease.Symptom) []Result {
	results := []Result{}
	if len(selected) == 0 {
		return results
	}

	chosen := lo.Uniq(selected)
	for _, d := range m.diseases {
		overlap := lo.CountBy(d.Symptoms, func(s disease.Symptom) bool {
			return lo.Contains(chosen, s)
		})
		if overlap == 0 {
			continue
		}
		score := Score(overlap, len(d.Symptoms))
		if score <= MinScore {
			continue
		}
		own, _ := m.registry.Get(d.ID)
		results = append(results, Result{Disease: own, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// Score is the integer percentage of total covered by overlap, rounded half up.
func Score(overlap, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(overlap) / float64(total)))
}
