package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("assessment not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Save(ctx context.Context, a *Assessment) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	query := `SELECT id, locale, patient, symptoms, results, created_at FROM assessments WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var a Assessment
	var patientJSON, symptomsJSON, resultsJSON []byte

	err := row.Scan(
		&a.ID,
		&a.Locale,
		&patientJSON,
		&symptomsJSON,
		&resultsJSON,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(patientJSON, &a.Patient); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patient: %w", err)
	}
	if err := json.Unmarshal(symptomsJSON, &a.Symptoms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symptoms: %w", err)
	}
	if len(resultsJSON) > 0 {
		if err := json.Unmarshal(resultsJSON, &a.Outcome); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}
	}

	return &a, nil
}

// Save inserts a. Assessments are immutable once stored.
func (r *postgresRepo) Save(ctx context.Context, a *Assessment) error {
	patientJSON, err := json.Marshal(a.Patient)
	if err != nil {
		return err
	}
	symptomsJSON, err := json.Marshal(a.Symptoms)
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(a.Outcome)
	if err != nil {
		return err
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO assessments (id, locale, patient, symptoms, results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.Locale, patientJSON, symptomsJSON, resultsJSON, a.CreatedAt)
	return err
}

type memoryRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Assessment
}

func NewMemoryRepository() Repository {
	return &memoryRepo{items: map[uuid.UUID]*Assessment{}}
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a.clone(), nil
}

func (r *memoryRepo) Save(_ context.Context, a *Assessment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[a.ID]; !exists {
		r.items[a.ID] = a.clone()
	}
	return nil
}
