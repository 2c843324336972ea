package agent

import (
	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/intent"
	"github.com/tbxark/quoteagent/types"
)

type Request struct {
	Messages []types.ChatMessage   `json:"messages"`
	Scenario string                `json:"scenario,omitempty"`
	Product  *types.ProductContext `json:"product,omitempty"`
	Pack     types.PackKey         `json:"pack,omitempty"`
	Locale   types.Locale          `json:"locale,omitempty"`
}

type Response struct {
	Message  string              `json:"message,omitempty"`
	Question string              `json:"question"`
	Topic    conversation.Topic  `json:"topic"`
	Intent   intent.Intent       `json:"intent,omitempty"`
	State    *conversation.State `json:"state,omitempty"`
	Metadata map[string]string   `json:"metadata,omitempty"`
}

type StreamResponse struct {
	MessageStream *schema.StreamReader[string] `json:"-"`
	Question      string                       `json:"question"`
	Topic         conversation.Topic           `json:"topic"`
	Intent        intent.Intent                `json:"intent,omitempty"`
	State         *conversation.State          `json:"state,omitempty"`
	Metadata      map[string]string            `json:"metadata,omitempty"`
}
