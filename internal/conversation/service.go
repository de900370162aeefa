package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"healify/internal/chat"
	"healify/internal/disease"
	"healify/internal/i18n"
)

var ErrEmptyMessage = errors.New("message is empty")

type Service interface {
	Start(ctx context.Context, locale i18n.Locale) (*Conversation, error)
	Send(ctx context.Context, id uuid.UUID, text string) (Turn, error)
	Reply(locale i18n.Locale, text string) string
	Get(ctx context.Context, id uuid.UUID) (*Conversation, error)
}

type service struct {
	repo       Repository
	catalog    *i18n.Catalog
	responders map[i18n.Locale]*chat.Responder
	logger     *slog.Logger

	// serializes the load-append-save cycle of Send
	mu sync.Mutex
}

// NewService builds one responder per supported locale up front.
func NewService(repo Repository, catalog *i18n.Catalog, registry *disease.Registry, logger *slog.Logger) (Service, error) {
	responders := make(map[i18n.Locale]*chat.Responder, len(i18n.Supported()))
	for _, loc := range i18n.Supported() {
		r, err := chat.NewResponder(registry, catalog.ChatLexicon(loc))
		if err != nil {
			return nil, fmt.Errorf("responder %s: %w", loc, err)
		}
		responders[loc] = r
	}
	return &service{
		repo:       repo,
		catalog:    catalog,
		responders: responders,
		logger:     logger,
	}, nil
}

func newTurn(sender Sender, text string) Turn {
	return Turn{ID: uuid.New(), Text: text, Sender: sender, Timestamp: time.Now()}
}

func (s *service) Start(ctx context.Context, locale i18n.Locale) (*Conversation, error) {
	if locale != "" && !locale.Supported() {
		locale = i18n.English
	}
	greetingLocale := locale
	if greetingLocale == "" {
		greetingLocale = i18n.English
	}

	c := &Conversation{
		ID:        uuid.New(),
		Locale:    locale,
		History:   []Turn{newTurn(SenderAssistant, s.catalog.Text(greetingLocale, i18n.KeyInitialGreeting))},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Send records the user's message and the assistant's answer and returns
// the answer.
func (s *service) Send(ctx context.Context, id uuid.UUID, text string) (Turn, error) {
	if strings.TrimSpace(text) == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Turn{}, err
	}

	c.History = append(c.History, newTurn(SenderUser, text))
	answer := newTurn(SenderAssistant, s.Reply(c.Locale, text))
	c.History = append(c.History, answer)

	if err := s.repo.Save(ctx, c); err != nil {
		return Turn{}, err
	}
	s.logger.Debug("chat turn", "conversation", id, "turns", len(c.History))
	return answer, nil
}

// Reply answers text without touching any transcript. An unknown or empty
// locale is guessed from the script of text.
func (s *service) Reply(locale i18n.Locale, text string) string {
	if !locale.Supported() {
		locale = i18n.DetectLocale(text)
	}
	return s.responders[locale].Respond(text)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return s.repo.GetByID(ctx, id)
}
