package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"healify/internal/disease"
	"healify/internal/i18n"
	"healify/internal/prediction"
)

var (
	ErrInvalidForm    = errors.New("invalid form")
	ErrNoSymptoms     = errors.New("no symptoms selected")
	ErrUnknownSymptom = errors.New("unknown symptom")
)

type Service interface {
	Symptoms(loc i18n.Locale) []i18n.SymptomLabel
	Predict(loc i18n.Locale, labels []string) ([]disease.Symptom, Outcome, error)
	Submit(ctx context.Context, form Form) (*Assessment, error)
	Get(ctx context.Context, id uuid.UUID) (*Assessment, error)
}

type service struct {
	repo     Repository
	catalog  *i18n.Catalog
	matcher  *prediction.Matcher
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(repo Repository, catalog *i18n.Catalog, matcher *prediction.Matcher, validate *validator.Validate, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		matcher:  matcher,
		validate: validate,
		logger:   logger,
	}
}

func (s *service) Symptoms(loc i18n.Locale) []i18n.SymptomLabel {
	return s.catalog.SymptomLabels(loc)
}

// Predict translates labels to symptoms and runs the matcher. The outcome
// carries the localized fallback when nothing matches.
func (s *service) Predict(loc i18n.Locale, labels []string) ([]disease.Symptom, Outcome, error) {
	symptoms, err := s.parseSymptoms(loc, labels)
	if err != nil {
		return nil, Outcome{}, err
	}
	return symptoms, s.localize(loc, s.matcher.Match(symptoms)), nil
}

func (s *service) parseSymptoms(loc i18n.Locale, labels []string) ([]disease.Symptom, error) {
	labels = lo.Filter(labels, func(l string, _ int) bool { return strings.TrimSpace(l) != "" })
	if len(labels) == 0 {
		return nil, ErrNoSymptoms
	}

	var unknown []string
	symptoms := make([]disease.Symptom, 0, len(labels))
	for _, label := range labels {
		sym, ok := s.catalog.ParseSymptom(loc, label)
		if !ok {
			unknown = append(unknown, label)
			continue
		}
		symptoms = append(symptoms, sym)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymptom, strings.Join(unknown, ", "))
	}
	return lo.Uniq(symptoms), nil
}

func (s *service) localize(loc i18n.Locale, results []prediction.Result) Outcome {
	out := Outcome{
		Results: lo.Map(results, func(r prediction.Result, _ int) Match {
			text := s.catalog.Disease(loc, r.Disease.ID)
			return Match{
				Disease:     r.Disease.ID,
				Name:        text.Name,
				Description: text.Description,
				Remedies:    text.Remedies,
				Score:       r.Score,
			}
		}),
	}
	if len(out.Results) == 0 {
		out.Fallback = &Fallback{
			Title:       s.catalog.Text(loc, i18n.KeyNoDiseaseTitle),
			Description: s.catalog.Text(loc, i18n.KeyNoDiseaseDescription),
			Remedy:      s.catalog.Text(loc, i18n.KeyNoDiseaseRemedy),
		}
	}
	return out
}

func (s *service) Submit(ctx context.Context, form Form) (*Assessment, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	loc := i18n.Negotiate(form.Lang)
	symptoms, outcome, err := s.Predict(loc, form.Symptoms)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		ID:     uuid.New(),
		Locale: loc,
		Patient: Patient{
			Name:     strings.TrimSpace(form.Name),
			Age:      form.Age,
			Gender:   form.Gender,
			Location: strings.TrimSpace(form.Location),
		},
		Symptoms:  symptoms,
		Outcome:   outcome,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("assessment stored", "id", a.ID, "symptoms", len(symptoms), "matches", len(outcome.Results))
	return a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}
