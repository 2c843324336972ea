package types

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type MessageKind string

const (
	KindNormal  MessageKind = "normal"
	KindWelcome MessageKind = "welcome"
	KindOther   MessageKind = "other"
)

// ChatMessage is one persisted transcript entry. Only normal and welcome
// messages take part in state building.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      Role        `json:"role"`
	Kind      MessageKind `json:"kind"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewChatMessage(role Role, kind MessageKind, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Kind:      kind,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func (m ChatMessage) Participates() bool {
	return m.Kind == KindNormal || m.Kind == KindWelcome
}

type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// Resolve maps unknown locales to French.
func (l Locale) Resolve() Locale {
	if l == LocaleEN {
		return LocaleEN
	}
	return LocaleFR
}

type PackKey string

const (
	PackNone       PackKey = ""
	PackConference PackKey = "conference"
	PackParty      PackKey = "party"
	PackWedding    PackKey = "wedding"
)

func (p PackKey) Valid() bool {
	switch p {
	case PackConference, PackParty, PackWedding:
		return true
	default:
		return false
	}
}

type ProductContext struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
