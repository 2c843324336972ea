package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/quoteagent/types"
)

var _ adk.Agent = (*Agent)(nil)

// Agent exposes a Flow as an adk agent. Each run reads the full transcript
// from the input messages and the conversation options from sessions.
type Agent struct {
	name        string
	description string
	flow        *Flow
	sessions    *SessionStore
}

func NewAgent(name, description string, flow *Flow, sessions *SessionStore) *Agent {
	return &Agent{
		name:        name,
		description: description,
		flow:        flow,
		sessions:    sessions,
	}
}

func (a *Agent) Name(ctx context.Context) string {
	return a.name
}

func (a *Agent) Description(ctx context.Context) string {
	return a.description
}

func (a *Agent) session(ctx context.Context) (*Session, error) {
	if a.sessions == nil {
		return &Session{Locale: types.LocaleFR}, nil
	}
	return a.sessions.Load(ctx)
}

func (a *Agent) Run(ctx context.Context, input *adk.AgentInput, options ...adk.AgentRunOption) *adk.AsyncIterator[*adk.AgentEvent] {
	iter, gen := adk.NewAsyncIteratorPair[*adk.AgentEvent]()
	go func() {
		defer func() {
			if e := recover(); e != nil {
				gen.Send(&adk.AgentEvent{
					Err: fmt.Errorf("recover from panic: %v", e),
				})
			}
			gen.Close()
		}()
		if input == nil || len(input.Messages) == 0 {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("no messages in input"),
			})
			return
		}
		session, err := a.session(ctx)
		if err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("load session failed: %w", err),
			})
			return
		}
		req := &Request{
			Messages: ToChatMessages(input.Messages),
			Scenario: session.Scenario,
			Product:  session.Product,
			Pack:     session.Pack,
			Locale:   session.Locale,
		}
		if input.EnableStreaming {
			a.runStream(ctx, req, gen)
			return
		}
		resp, err := a.flow.Invoke(ctx, req)
		if err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("flow invoke failed: %w", err),
			})
			return
		}
		gen.Send(&adk.AgentEvent{
			AgentName: a.name,
			Output: &adk.AgentOutput{
				MessageOutput: &adk.MessageVariant{
					IsStreaming: false,
					Message:     assistantMessage(resp.Message),
					Role:        schema.Assistant,
				},
			},
		})
	}()
	return iter
}

func (a *Agent) runStream(ctx context.Context, req *Request, gen *adk.AsyncGenerator[*adk.AgentEvent]) {
	resp, err := a.flow.InvokeStream(ctx, req)
	if err != nil {
		gen.Send(&adk.AgentEvent{
			Err: fmt.Errorf("flow stream failed: %w", err),
		})
		return
	}
	stream := schema.StreamReaderWithConvert(resp.MessageStream, func(chunk string) (*schema.Message, error) {
		return schema.AssistantMessage(chunk, nil), nil
	})
	gen.Send(&adk.AgentEvent{
		AgentName: a.name,
		Output: &adk.AgentOutput{
			MessageOutput: &adk.MessageVariant{
				IsStreaming:   true,
				MessageStream: stream,
				Role:          schema.Assistant,
			},
		},
	})
}

func assistantMessage(content string) *schema.Message {
	return NewMessage(schema.Assistant, types.KindNormal, content)
}
