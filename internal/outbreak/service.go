package outbreak

import (
	"errors"
	"slices"

	"github.com/samber/lo"

	"healify/internal/i18n"
)

var ErrNotFound = errors.New("outbreak not found")

// Service serves the static outbreak tables in a given language.
type Service struct {
	catalog *i18n.Catalog
}

func NewService(catalog *i18n.Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) localize(loc i18n.Locale, o Outbreak) Outbreak {
	if o.Name == localizedName {
		o.Name = s.catalog.Text(loc, i18n.KeyOutbreakTitle)
	}
	o.Description = s.catalog.Disease(loc, o.Disease).Description
	o.Color = o.Severity.Color()
	return o
}

func (s *Service) List(loc i18n.Locale) []Outbreak {
	return lo.Map(outbreaks, func(o Outbreak, _ int) Outbreak { return s.localize(loc, o) })
}

func (s *Service) Get(loc i18n.Locale, id int) (Outbreak, error) {
	o, ok := lo.Find(outbreaks, func(o Outbreak) bool { return o.ID == id })
	if !ok {
		return Outbreak{}, ErrNotFound
	}
	return s.localize(loc, o), nil
}

func (s *Service) StateStats() []StateStat {
	return slices.Clone(stateStats)
}

func (s *Service) Trends() []TrendPoint {
	return slices.Clone(trends)
}
