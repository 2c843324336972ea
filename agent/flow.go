package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	"go.uber.org/zap"

	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/dialogue"
	"github.com/tbxark/quoteagent/intent"
	"github.com/tbxark/quoteagent/types"
)

var ErrNilRequest = errors.New("nil request")

type FlowOption func(*Flow)

func WithLogger(logger *zap.Logger) FlowOption {
	return func(f *Flow) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Flow computes one assistant turn from a transcript. It keeps no
// conversation state of its own; everything is rebuilt from the messages.
type Flow struct {
	builder    *conversation.Builder
	recognizer intent.Recognizer
	generator  dialogue.Generator
	logger     *zap.Logger
}

func NewFlow(recognizer intent.Recognizer, generator dialogue.Generator, opts ...FlowOption) *Flow {
	f := &Flow{
		recognizer: recognizer,
		generator:  generator,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.recognizer == nil {
		f.recognizer = intent.NewLocalRecognizer()
	}
	if f.generator == nil {
		f.generator = dialogue.NewLocalGenerator()
	}
	f.builder = conversation.NewBuilder(conversation.WithLogger(f.logger))
	return f
}

// NewLocalFlow asks the policy questions verbatim without any model.
func NewLocalFlow(opts ...FlowOption) *Flow {
	return NewFlow(intent.NewLocalRecognizer(), dialogue.NewLocalGenerator(), opts...)
}

// NewToolBasedFlow phrases questions with chatModel and falls back to the
// local recognizer and generator when the model fails.
func NewToolBasedFlow(chatModel model.ToolCallingChatModel, opts ...FlowOption) (*Flow, error) {
	recognizer, err := intent.NewToolBasedRecognizer(chatModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool-based intent recognizer: %w", err)
	}
	return NewFlow(
		intent.NewFailbackRecognizer(recognizer, intent.NewLocalRecognizer()),
		dialogue.NewFailbackGenerator(dialogue.NewToolBasedGenerator(chatModel), dialogue.NewLocalGenerator()),
		opts...,
	), nil
}

type turn struct {
	state    *conversation.State
	topic    conversation.Topic
	intent   intent.Intent
	request  *types.ToolRequest
	metadata map[string]string
}

func (f *Flow) prepare(ctx context.Context, req *Request) *turn {
	st := f.builder.Build(conversation.Input{
		Messages: req.Messages,
		Scenario: req.Scenario,
		Product:  req.Product,
		Pack:     req.Pack,
	})
	locale := req.Locale.Resolve()
	t := &turn{
		state:    st,
		topic:    dialogue.NextTopic(st),
		metadata: map[string]string{"locale": string(locale)},
		request: &types.ToolRequest{
			Known:        st.Known,
			Locale:       locale,
			Engaged:      st.Engaged,
			Preamble:     dialogue.Preamble(st.Engaged, st.HasGreetingBeenDone, locale),
			NextQuestion: dialogue.NextQuestion(st, locale),
			LastUserText: st.LastUserNormal,
		},
	}
	if st.LastUserNormal != "" {
		in, err := f.recognizer.RecognizeIntent(ctx, st.LastUserNormal)
		if err != nil {
			f.logger.Warn("intent recognition failed", zap.Error(err))
			t.metadata["intent_error"] = err.Error()
		}
		t.intent = in
		t.request.LastUserIntent = string(in)
	}
	f.logger.Debug("conversation state built",
		zap.Bool("engaged", st.Engaged),
		zap.String("topic", string(t.topic)),
		zap.String("intent", string(t.intent)),
		zap.String("pack", string(st.PackKey)),
		zap.Int("messages", len(req.Messages)),
	)
	return t
}

func (f *Flow) Invoke(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	ctx = callbacks.EnsureRunInfo(ctx, "QuoteFlow", "Flow")
	ctx = callbacks.OnStart(ctx, map[string]any{
		"messages": len(req.Messages),
		"pack":     string(req.Pack),
		"locale":   string(req.Locale),
	})
	defer func() {
		if r := recover(); r != nil {
			callbacks.OnError(ctx, fmt.Errorf("panic in QuoteFlow.Invoke: %v", r))
			panic(r)
		}
	}()

	t := f.prepare(ctx, req)
	message, err := f.generator.GenerateDialogue(ctx, t.request)
	if err != nil {
		f.logger.Warn("dialogue generation failed, using the plain question", zap.Error(err))
		callbacks.OnError(ctx, err)
		t.metadata["error"] = err.Error()
		message = t.request.NextQuestion
	}
	resp := &Response{
		Message:  message,
		Question: t.request.NextQuestion,
		Topic:    t.topic,
		Intent:   t.intent,
		State:    t.state,
		Metadata: t.metadata,
	}
	callbacks.OnEnd(ctx, map[string]any{
		"topic":   string(resp.Topic),
		"engaged": resp.State.Engaged,
	})
	return resp, nil
}

func (f *Flow) InvokeStream(ctx context.Context, req *Request) (*StreamResponse, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	ctx = callbacks.EnsureRunInfo(ctx, "QuoteFlow", "Flow")
	ctx = callbacks.OnStart(ctx, map[string]any{
		"messages":  len(req.Messages),
		"pack":      string(req.Pack),
		"locale":    string(req.Locale),
		"streaming": true,
	})

	t := f.prepare(ctx, req)
	stream, err := f.generator.GenerateDialogueStream(ctx, t.request)
	if err != nil {
		f.logger.Warn("dialogue stream failed, using the plain question", zap.Error(err))
		callbacks.OnError(ctx, err)
		t.metadata["error"] = err.Error()
		stream, err = dialogue.NewLocalGenerator().GenerateDialogueStream(ctx, t.request)
		if err != nil {
			return nil, err
		}
	}
	callbacks.OnEnd(ctx, map[string]any{
		"topic":   string(t.topic),
		"engaged": t.state.Engaged,
	})
	return &StreamResponse{
		MessageStream: stream,
		Question:      t.request.NextQuestion,
		Topic:         t.topic,
		Intent:        t.intent,
		State:         t.state,
		Metadata:      t.metadata,
	}, nil
}
