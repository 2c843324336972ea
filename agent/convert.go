package agent

import (
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/tbxark/quoteagent/types"
)

// Extra keys carried on eino messages.
const (
	ExtraKind = "kind"
	ExtraID   = "id"
)

// NewMessage builds an eino message tagged with a fresh id and kind.
func NewMessage(role schema.RoleType, kind types.MessageKind, content string) *schema.Message {
	return &schema.Message{
		Role:    role,
		Content: content,
		Extra: map[string]any{
			ExtraKind: string(kind),
			ExtraID:   uuid.NewString(),
		},
	}
}

func messageID(msg *schema.Message) string {
	if id, ok := msg.Extra[ExtraID].(string); ok {
		return id
	}
	return ""
}

func messageKind(msg *schema.Message) types.MessageKind {
	switch kind, _ := msg.Extra[ExtraKind].(string); types.MessageKind(kind) {
	case types.KindWelcome:
		return types.KindWelcome
	case types.KindOther:
		return types.KindOther
	default:
		return types.KindNormal
	}
}

// ToChatMessages converts an eino history into transcript entries. Tool
// messages and nil entries are dropped; a message without a kind is normal.
func ToChatMessages(msgs []*schema.Message) []types.ChatMessage {
	out := make([]types.ChatMessage, 0, len(msgs))
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		var role types.Role
		switch msg.Role {
		case schema.User:
			role = types.RoleUser
		case schema.Assistant:
			role = types.RoleAssistant
		case schema.System:
			role = types.RoleSystem
		default:
			continue
		}
		id := messageID(msg)
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, types.ChatMessage{
			ID:        id,
			Role:      role,
			Kind:      messageKind(msg),
			Content:   msg.Content,
			CreatedAt: time.Now(),
		})
	}
	return out
}
