package chat

import (
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// KeywordSet answers whether any of its keywords occurs as a substring of a
// text. Keywords are matched case-insensitively.
type KeywordSet struct {
	keywords []string
	machine  *goahocorasick.Machine
}

func NewKeywordSet(keywords ...string) (*KeywordSet, error) {
	normalized := lo.Uniq(lo.FilterMap(keywords, func(k string, _ int) (string, bool) {
		k = strings.ToLower(strings.TrimSpace(k))
		return k, k != ""
	}))
	sort.Strings(normalized)

	set := &KeywordSet{keywords: normalized}
	if len(normalized) == 0 {
		return set, nil
	}

	patterns := lo.Map(normalized, func(k string, _ int) []rune { return []rune(k) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	set.machine = m
	return set, nil
}

// Matches expects text already lower-cased.
func (s *KeywordSet) Matches(text string) bool {
	if s.machine == nil || text == "" {
		return false
	}
	return len(s.machine.MultiPatternSearch([]rune(text), true)) > 0
}

// Keywords returns the normalized keywords in sorted order.
func (s *KeywordSet) Keywords() []string {
	return append([]string(nil), s.keywords...)
}
