package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/quoteagent/types"
)

// DefaultDialogueSystemPromptTemplate takes the reply language and the tone
// preamble, in that order.
const DefaultDialogueSystemPromptTemplate = `You are the assistant of an event equipment rental shop (sound systems, microphones, lighting, video projection). You help customers build a quote by asking one question at a time.

Rules:
- Ask exactly the question given under "Next question to ask". You may rephrase it naturally but never add a second question.
- Never ask again about a slot that already appears in the known context.
- When the latest user message intent is greeting or acknowledgment, answer it in a few words without greeting back, then ask the question.
- Keep the reply short: one or two sentences, no lists.
- Reply in %s.

Tone:
%s
`

var localeNames = map[types.Locale]string{
	types.LocaleFR: "French",
	types.LocaleEN: "English",
}

type generatorOptions struct {
	systemPromptTemplate string
	withSchema           bool
}

type GeneratorOption func(*generatorOptions)

// WithDialogueSystemPromptTemplate overrides the system prompt template. The
// first "%s" becomes the language name and the second the preamble; any
// further "%s" and every other character are kept as written.
func WithDialogueSystemPromptTemplate(systemPromptTemplate string) GeneratorOption {
	return func(o *generatorOptions) {
		o.systemPromptTemplate = systemPromptTemplate
	}
}

// WithKnownContextSchema appends the JSON schema of the known context to
// the user prompt.
func WithKnownContextSchema(enabled bool) GeneratorOption {
	return func(o *generatorOptions) {
		o.withSchema = enabled
	}
}

type ToolBasedGenerator struct {
	systemPromptTemplate string
	withSchema           bool
	chatModel            model.ToolCallingChatModel
}

func NewToolBasedGenerator(chatModel model.ToolCallingChatModel, opts ...GeneratorOption) *ToolBasedGenerator {
	options := generatorOptions{
		systemPromptTemplate: DefaultDialogueSystemPromptTemplate,
		withSchema:           true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.systemPromptTemplate == "" {
		options.systemPromptTemplate = DefaultDialogueSystemPromptTemplate
	}
	return &ToolBasedGenerator{
		systemPromptTemplate: options.systemPromptTemplate,
		withSchema:           options.withSchema,
		chatModel:            chatModel,
	}
}

func (g *ToolBasedGenerator) GenerateDialogue(ctx context.Context, req *types.ToolRequest) (string, error) {
	messages, err := g.buildDialoguePrompt(req)
	if err != nil {
		return "", fmt.Errorf("build dialogue prompt: %w", err)
	}
	response, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	content := strings.TrimSpace(response.Content)
	if content == "" {
		return "", fmt.Errorf("LLM returned an empty reply")
	}
	return content, nil
}

func (g *ToolBasedGenerator) GenerateDialogueStream(ctx context.Context, req *types.ToolRequest) (*schema.StreamReader[string], error) {
	messages, err := g.buildDialoguePrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build dialogue prompt: %w", err)
	}
	stream, err := g.chatModel.Stream(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("LLM stream call failed: %w", err)
	}
	return schema.StreamReaderWithConvert(stream, func(message *schema.Message) (string, error) {
		return message.Content, nil
	}), nil
}

func (g *ToolBasedGenerator) systemPrompt(req *types.ToolRequest) string {
	prompt := strings.Replace(g.systemPromptTemplate, "%s", localeNames[req.Locale.Resolve()], 1)
	return strings.Replace(prompt, "%s", req.Preamble, 1)
}

func (g *ToolBasedGenerator) buildDialoguePrompt(req *types.ToolRequest) ([]*schema.Message, error) {
	if req == nil || req.NextQuestion == "" {
		return nil, ErrNoQuestion
	}
	message, err := types.FormatToolRequest(req)
	if err != nil {
		return nil, fmt.Errorf("convert to prompt message failed: %w", err)
	}
	if g.withSchema {
		schemaJSON, err := types.KnownContextSchema()
		if err != nil {
			return nil, err
		}
		message = fmt.Sprintf("%s\n\n# Known context schema:\n```json\n%s\n```", message, schemaJSON)
	}
	return []*schema.Message{
		schema.SystemMessage(g.systemPrompt(req)),
		schema.UserMessage(message),
	}, nil
}
