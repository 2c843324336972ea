package testcases

import (
	"context"
	"os"
	"testing"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/tbxark/quoteagent/agent"
	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/types"
)

type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("QUOTEAGENT")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// InitChatModel returns a live model, or skips the test unless
// QUOTEAGENT_RUN_LIVE_TESTS=1 and ../config.json carry credentials.
func InitChatModel(t *testing.T) *openai.ChatModel {
	t.Helper()
	if os.Getenv("QUOTEAGENT_RUN_LIVE_TESTS") != "1" {
		t.Skip("set QUOTEAGENT_RUN_LIVE_TESTS=1 to run live LLM tests")
		return nil
	}
	conf, err := loadConfig("../config.json")
	if err != nil {
		t.Skipf("failed to load config: %v", err)
		return nil
	}
	if conf.APIKey == "" {
		t.Skip("config.json api_key is empty")
		return nil
	}
	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		APIKey:  conf.APIKey,
		Model:   conf.Model,
		BaseURL: conf.BaseURL,
	})
	require.NoError(t, err)
	return chatModel
}

// Conversation drives a flow one user turn at a time and appends every
// reply to the transcript, the way a chat front end would.
type Conversation struct {
	t       *testing.T
	flow    *agent.Flow
	request agent.Request
	asked   []string
}

func NewConversation(t *testing.T, flow *agent.Flow, pack types.PackKey, locale types.Locale) *Conversation {
	return &Conversation{
		t:       t,
		flow:    flow,
		request: agent.Request{Pack: pack, Locale: locale},
	}
}

// Assistant appends a scripted assistant turn without calling the flow.
func (c *Conversation) Assistant(text string) *Conversation {
	c.request.Messages = append(c.request.Messages, types.NewChatMessage(types.RoleAssistant, types.KindNormal, text))
	return c
}

// User appends a user turn without calling the flow.
func (c *Conversation) User(text string) *Conversation {
	c.request.Messages = append(c.request.Messages, types.NewChatMessage(types.RoleUser, types.KindNormal, text))
	return c
}

// Next asks the flow for the following assistant turn and records it.
func (c *Conversation) Next() *agent.Response {
	c.t.Helper()
	resp, err := c.flow.Invoke(context.Background(), &c.request)
	require.NoError(c.t, err)
	c.asked = append(c.asked, resp.Question)
	c.Assistant(resp.Message)
	return resp
}

// Say appends a user turn and returns the assistant's reply to it.
func (c *Conversation) Say(text string) *agent.Response {
	c.t.Helper()
	return c.User(text).Next()
}

func (c *Conversation) Questions() []string {
	return c.asked
}

func (c *Conversation) State() *conversation.State {
	return conversation.Build(conversation.Input{
		Messages: c.request.Messages,
		Pack:     c.request.Pack,
	})
}

func (c *Conversation) Messages() []types.ChatMessage {
	return c.request.Messages
}
