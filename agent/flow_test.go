package agent

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/dialogue"
	"github.com/tbxark/quoteagent/fakemodel"
	"github.com/tbxark/quoteagent/intent"
	"github.com/tbxark/quoteagent/types"
)

func conferenceTranscript() []types.ChatMessage {
	return []types.ChatMessage{
		types.NewChatMessage(types.RoleUser, types.KindNormal, "une conférence"),
		types.NewChatMessage(types.RoleAssistant, types.KindNormal, "how many people?"),
		types.NewChatMessage(types.RoleUser, types.KindNormal, "50"),
		types.NewChatMessage(types.RoleAssistant, types.KindNormal, "indoor or outdoor?"),
		types.NewChatMessage(types.RoleUser, types.KindNormal, "intérieur"),
	}
}

func drain(t *testing.T, stream *schema.StreamReader[string]) string {
	t.Helper()
	defer stream.Close()
	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String()
		}
		require.NoError(t, err)
		sb.WriteString(chunk)
	}
}

type failingGenerator struct{}

func (failingGenerator) GenerateDialogue(ctx context.Context, req *types.ToolRequest) (string, error) {
	return "", errors.New("generator down")
}

func (failingGenerator) GenerateDialogueStream(ctx context.Context, req *types.ToolRequest) (*schema.StreamReader[string], error) {
	return nil, errors.New("generator down")
}

var _ dialogue.Generator = failingGenerator{}

func TestLocalFlowConferenceScenario(t *testing.T) {
	t.Parallel()
	flow := NewLocalFlow(WithLogger(zap.NewNop()))
	resp, err := flow.Invoke(context.Background(), &Request{Messages: conferenceTranscript()})
	require.NoError(t, err)
	assert.Equal(t, "Combien d'intervenants auront besoin d'un micro ?", resp.Message)
	assert.Equal(t, resp.Message, resp.Question)
	assert.Equal(t, conversation.TopicVibe, resp.Topic)
	assert.Equal(t, intent.Content, resp.Intent)
	assert.Equal(t, types.Ptr(50), resp.State.Known.PeopleCount)
	assert.Equal(t, "fr", resp.Metadata["locale"])
	assert.NotContains(t, resp.Metadata, "error")
}

func TestLocalFlowOpening(t *testing.T) {
	t.Parallel()
	resp, err := NewLocalFlow().Invoke(context.Background(), &Request{
		Messages: []types.ChatMessage{types.NewChatMessage(types.RoleUser, types.KindNormal, "Hello!")},
		Locale:   types.LocaleEN,
	})
	require.NoError(t, err)
	assert.Equal(t, "What type of event are you planning?", resp.Message)
	assert.Equal(t, intent.Greeting, resp.Intent)
	assert.False(t, resp.State.Engaged)
}

func TestFlowFallsBackToQuestion(t *testing.T) {
	t.Parallel()
	flow := NewFlow(intent.NewLocalRecognizer(), failingGenerator{})
	resp, err := flow.Invoke(context.Background(), &Request{Pack: types.PackParty})
	require.NoError(t, err)
	assert.Equal(t, "Quel type d'événement organisez-vous ?", resp.Message)
	assert.Equal(t, "generator down", resp.Metadata["error"])
	assert.True(t, resp.State.Engaged)

	stream, err := flow.InvokeStream(context.Background(), &Request{Pack: types.PackParty})
	require.NoError(t, err)
	assert.Equal(t, "Quel type d'événement organisez-vous ?", drain(t, stream.MessageStream))
	assert.Equal(t, "generator down", stream.Metadata["error"])
}

func TestFlowRejectsNilRequest(t *testing.T) {
	t.Parallel()
	_, err := NewLocalFlow().Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilRequest)
	_, err = NewLocalFlow().InvokeStream(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilRequest)
}

func TestToolBasedFlow(t *testing.T) {
	t.Parallel()
	cm := fakemodel.New(
		fakemodel.ToolCall("parse_intent", `{"intent":"content"}`),
		fakemodel.Text("Très bien ! Combien d'intervenants auront besoin d'un micro ?"),
	)
	flow, err := NewToolBasedFlow(cm)
	require.NoError(t, err)
	resp, err := flow.Invoke(context.Background(), &Request{Messages: conferenceTranscript()})
	require.NoError(t, err)
	assert.Equal(t, "Très bien ! Combien d'intervenants auront besoin d'un micro ?", resp.Message)
	assert.Equal(t, "Combien d'intervenants auront besoin d'un micro ?", resp.Question)
	assert.Equal(t, intent.Content, resp.Intent)
	assert.Len(t, cm.Calls(), 2)
}

func TestToolBasedFlowPassesGreetingIntent(t *testing.T) {
	t.Parallel()
	cm := fakemodel.New(fakemodel.Text("Bonjour à vous aussi ! Combien d'intervenants auront besoin d'un micro ?"))
	flow, err := NewToolBasedFlow(cm)
	require.NoError(t, err)
	msgs := append(conferenceTranscript(), types.NewChatMessage(types.RoleUser, types.KindNormal, "bonjour"))
	resp, err := flow.Invoke(context.Background(), &Request{Messages: msgs})
	require.NoError(t, err)
	assert.Equal(t, intent.Greeting, resp.Intent)

	calls := cm.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0][1].Content, "# Latest user message intent:\ngreeting")
}

func TestToolBasedFlowModelDown(t *testing.T) {
	t.Parallel()
	flow, err := NewToolBasedFlow(fakemodel.Failing(errors.New("model down")))
	require.NoError(t, err)
	resp, err := flow.Invoke(context.Background(), &Request{Messages: conferenceTranscript()})
	require.NoError(t, err)
	assert.Equal(t, "Combien d'intervenants auront besoin d'un micro ?", resp.Message)
	assert.Equal(t, intent.Content, resp.Intent)
	assert.NotContains(t, resp.Metadata, "error")
	assert.NotContains(t, resp.Metadata, "intent_error")
}
