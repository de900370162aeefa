package conversation

import (
	"time"

	"github.com/google/uuid"

	"healify/internal/i18n"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one message of a transcript.
type Turn struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a chat session. An empty Locale means the language is
// guessed from every message.
type Conversation struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Locale    i18n.Locale `json:"lang,omitempty" db:"locale"`
	History   []Turn      `json:"history" db:"history"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

func (c *Conversation) clone() *Conversation {
	out := *c
	out.History = append([]Turn(nil), c.History...)
	return &out
}
