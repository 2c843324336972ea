package intent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/quoteagent/structured"
)

const (
	parseIntentToolName        = "parse_intent"
	parseIntentToolDescription = "Classify a chat message as greeting, acknowledgment or content."
)

// DefaultParseIntentSystemPromptTemplate may contain a single "%s"
// placeholder for the tool name.
const DefaultParseIntentSystemPromptTemplate = `
You are helping an equipment rental quoting assistant understand chat messages.

Classify the user's message:
- greeting: the message only greets (hello, bonjour, ...), with no request or fact.
- acknowledgment: the message only agrees or acknowledges (yes, ok, d'accord, ...).
- content: the message carries any fact, request or question, even if it also greets.

Never answer greeting or acknowledgment for a message containing digits.

Call the '%s' tool with the result.
`

type PromptBuilder func(systemPrompt string) structured.PromptBuilder[string]

type recognizerOptions struct {
	systemPromptTemplate string
	promptBuilder        PromptBuilder
}

type RecognizerOption func(*recognizerOptions)

func WithIntentSystemPromptTemplate(systemPromptTemplate string) RecognizerOption {
	return func(o *recognizerOptions) {
		o.systemPromptTemplate = systemPromptTemplate
	}
}

func WithIntentPromptBuilder(promptBuilder PromptBuilder) RecognizerOption {
	return func(o *recognizerOptions) {
		o.promptBuilder = promptBuilder
	}
}

func newRecognizerOptions(opts ...RecognizerOption) *recognizerOptions {
	opt := recognizerOptions{
		systemPromptTemplate: DefaultParseIntentSystemPromptTemplate,
		promptBuilder: func(systemPrompt string) structured.PromptBuilder[string] {
			return func(ctx context.Context, text string) ([]*schema.Message, error) {
				return []*schema.Message{
					schema.SystemMessage(systemPrompt),
					schema.UserMessage(text),
				}, nil
			}
		},
	}
	for _, o := range opts {
		if o != nil {
			o(&opt)
		}
	}
	return &opt
}

type parseIntentInput struct {
	Intent Intent `json:"intent" jsonschema:"required,enum=greeting,enum=acknowledgment,enum=content,description=The kind of message"`
}

// ToolBasedRecognizer trusts the local predicates first and only asks the
// model about messages they classify as content.
type ToolBasedRecognizer struct {
	chain *structured.Chain[string, parseIntentInput]
}

func NewToolBasedRecognizer(chatModel model.ToolCallingChatModel, opts ...RecognizerOption) (*ToolBasedRecognizer, error) {
	options := newRecognizerOptions(opts...)
	chain, err := structured.NewChain[string, parseIntentInput](
		chatModel,
		options.promptBuilder(fmt.Sprintf(options.systemPromptTemplate, parseIntentToolName)),
		parseIntentToolName,
		parseIntentToolDescription,
	)
	if err != nil {
		return nil, err
	}
	return &ToolBasedRecognizer{chain: chain}, nil
}

func (r *ToolBasedRecognizer) RecognizeIntent(ctx context.Context, text string) (Intent, error) {
	if local := Classify(text); local != Content {
		return local, nil
	}
	result, err := r.chain.Invoke(ctx, text)
	if err != nil {
		return Content, err
	}
	if result == nil || result.Intent == "" {
		return Content, fmt.Errorf("empty intent returned by %s", parseIntentToolName)
	}
	switch result.Intent {
	case Greeting, Acknowledgment:
		if hasDigit(text) {
			return Content, nil
		}
		return result.Intent, nil
	default:
		return Content, nil
	}
}
