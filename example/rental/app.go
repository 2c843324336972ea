package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tbxark/quoteagent/agent"
	"github.com/tbxark/quoteagent/conversation"
	"github.com/tbxark/quoteagent/types"
)

func newFlow(ctx context.Context, conf *Config, logger *zap.Logger) (*agent.Flow, error) {
	if conf.APIKey == "" {
		logger.Info("no api key configured, asking questions verbatim")
		return agent.NewLocalFlow(agent.WithLogger(logger)), nil
	}
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  conf.APIKey,
		Model:   conf.Model,
		BaseURL: conf.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return agent.NewToolBasedFlow(cm, agent.WithLogger(logger))
}

func startApp(ctx context.Context, conf *Config, logger *zap.Logger) error {
	flow, err := newFlow(ctx, conf, logger)
	if err != nil {
		return err
	}
	session := &agent.Session{
		Pack:   types.PackKey(conf.Pack),
		Locale: types.Locale(conf.Locale).Resolve(),
	}
	if session.Pack != types.PackNone && !session.Pack.Valid() {
		return fmt.Errorf("unknown pack %q", conf.Pack)
	}

	sessions := agent.NewMemorySessionStore()
	history := agent.NewMemoryHistoryStore(agent.KeepSystemLastNTrimmer{N: conf.History})
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent: agent.NewAgent(
			"RentalQuote",
			"Collects event details for an equipment rental quote, one question at a time",
			flow,
			sessions,
		),
	})

	chatCtx := agent.WithConversationKey(ctx, uuid.NewString())
	if err := sessions.Save(chatCtx, session); err != nil {
		return err
	}
	fmt.Println("Type your message. /state shows what is known, /reset starts over, /quit exits.")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("you: ")
		input, rErr := reader.ReadString('\n')
		if rErr != nil {
			return nil
		}
		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "/quit":
			return nil
		case "/reset":
			if err := history.Clear(chatCtx); err != nil {
				return err
			}
			chatCtx = agent.WithConversationKey(ctx, uuid.NewString())
			if err := sessions.Save(chatCtx, session); err != nil {
				return err
			}
			fmt.Println("-- new conversation --")
			continue
		case "/state":
			if err := printState(chatCtx, history, session); err != nil {
				return err
			}
			continue
		}

		msgs, err := history.Append(chatCtx, agent.NewMessage(schema.User, types.KindNormal, input))
		if err != nil {
			return err
		}
		iter := runner.Run(chatCtx, msgs)
		for {
			event, ok := iter.Next()
			if !ok {
				break
			}
			if event.Err != nil {
				return event.Err
			}
			msg, mErr := event.Output.MessageOutput.GetMessage()
			if mErr != nil {
				return mErr
			}
			if _, err := history.Append(chatCtx, msg); err != nil {
				return err
			}
			fmt.Printf("assistant: %s\n", msg.Content)
		}
	}
}

func printState(ctx context.Context, history *agent.HistoryStore, session *agent.Session) error {
	msgs, err := history.Load(ctx)
	if err != nil {
		return err
	}
	st := conversation.Build(conversation.Input{
		Messages: agent.ToChatMessages(msgs),
		Pack:     session.Pack,
	})
	table := types.FormatKnownContext(st.Known)
	if table == "" {
		fmt.Println("nothing known yet")
		return nil
	}
	fmt.Print(table)
	return nil
}
