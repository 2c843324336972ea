package dialogue

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/quoteagent/types"
)

// Generator turns the next question into the assistant's reply text.
type Generator interface {
	GenerateDialogue(ctx context.Context, req *types.ToolRequest) (string, error)
	GenerateDialogueStream(ctx context.Context, req *types.ToolRequest) (*schema.StreamReader[string], error)
}
