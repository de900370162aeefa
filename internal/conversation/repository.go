package conversation

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

var ErrNotFound = errors.New("conversation not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Conversation, error)
	Save(ctx context.Context, c *Conversation) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	query := `SELECT id, locale, history, created_at, updated_at FROM conversations WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var c Conversation
	var historyJSON []byte

	err := row.Scan(
		&c.ID,
		&c.Locale,
		&historyJSON,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &c.History); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history: %w", err)
		}
	}

	return &c, nil
}

func (r *postgresRepo) Save(ctx context.Context, c *Conversation) error {
	if c.History == nil {
		c.History = []Turn{}
	}
	historyJSON, err := json.Marshal(c.History)
	if err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()

	query := `
		INSERT INTO conversations (id, locale, history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			locale = $2,
			history = $3,
			updated_at = $5
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Locale, historyJSON, c.CreatedAt, c.UpdatedAt)
	return err
}

// memoryRepo keeps conversations in process. Used when no database is
// configured.
type memoryRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Conversation
}

func NewMemoryRepository() Repository {
	return &memoryRepo{items: map[uuid.UUID]*Conversation{}}
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.clone(), nil
}

func (r *memoryRepo) Save(_ context.Context, c *Conversation) error {
	if c.History == nil {
		c.History = []Turn{}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c.clone()
	return nil
}
