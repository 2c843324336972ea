// Package conversation folds a chat transcript into the slot state the
// question policy works from.
package conversation

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/tbxark/quoteagent/extract"
	"github.com/tbxark/quoteagent/intent"
	"github.com/tbxark/quoteagent/patch"
	"github.com/tbxark/quoteagent/types"
)

type Input struct {
	Messages []types.ChatMessage
	Scenario string
	Product  *types.ProductContext
	Pack     types.PackKey
}

type State struct {
	Engaged             bool               `json:"engaged"`
	HasGreetingBeenDone bool               `json:"hasGreetingBeenDone"`
	Known               types.KnownContext `json:"known"`
	LastUserNormal      string             `json:"lastUserNormal,omitempty"`
	PackKey             types.PackKey      `json:"packKey,omitempty"`
	AskedQuestions      AskedQuestions     `json:"askedQuestions"`
}

// Branch reports which vibe vocabulary applies to the state.
func (s *State) Branch() VibeBranch {
	return branchOf(s.Known.EventType, s.PackKey)
}

func branchOf(event *types.EventType, pack types.PackKey) VibeBranch {
	if types.ConferenceLike(event, pack) {
		return ConferenceBranch
	}
	return PartyBranch
}

var assistantGreeting = regexp.MustCompile(`^(bonjour|bonsoir|salut|coucou|hello|hi|hey)\b`)

type Option func(*Builder)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type Builder struct {
	logger *zap.Logger
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	return b
}

var defaultBuilder = NewBuilder()

// Build derives the state from scratch. Calling it twice on the same input
// yields equal states.
func Build(in Input) *State {
	return defaultBuilder.Build(in)
}

// Build walks the transcript once, in order. Assistant messages mark the
// topics they asked about and user messages fill slots that are still
// empty, so a later answer never overwrites an earlier one.
func (b *Builder) Build(in Input) *State {
	st := &State{}
	if in.Pack.Valid() {
		st.PackKey = in.Pack
		st.Known.DeliveryChoice = types.Ptr(types.DeliveryDelivery)
		st.Known.WithInstallation = types.Ptr(true)
		st.AskedQuestions.Mark(TopicDeliveryChoice)
	}

	assistantTurns := 0
	for _, msg := range in.Messages {
		if !msg.Participates() {
			continue
		}
		switch msg.Role {
		case types.RoleAssistant:
			if msg.Kind == types.KindWelcome || assistantGreeting.MatchString(extract.Normalize(msg.Content)) {
				st.HasGreetingBeenDone = true
			}
			if msg.Kind == types.KindNormal {
				assistantTurns++
			}
			st.AskedQuestions.Mark(DetectAskedTopics(msg.Content, st.Branch())...)
		case types.RoleUser:
			if msg.Kind == types.KindNormal {
				st.LastUserNormal = msg.Content
			}
			b.absorb(st, msg)
		}
	}

	st.Engaged = in.Scenario != "" ||
		in.Product != nil ||
		st.PackKey.Valid() ||
		!st.Known.Empty() ||
		assistantTurns > 0
	return st
}

func (b *Builder) absorb(st *State, msg types.ChatMessage) {
	if intent.Classify(msg.Content).Noise() {
		return
	}
	candidate := Extract(st.Known, st.AskedQuestions, msg.Content, st.PackKey)
	if candidate.Empty() {
		return
	}
	merged, err := patch.FillEmpty(st.Known, candidate)
	if err != nil {
		b.logger.Warn("failed to merge extracted slots",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		return
	}
	st.Known = merged
}

// Extract runs every extractor over text. known and asked gate the
// extractors that depend on the event or on a pending question; values
// already in known are not filtered out here.
func Extract(known types.KnownContext, asked AskedQuestions, text string, pack types.PackKey) types.KnownContext {
	var c types.KnownContext
	c.EventType = extract.EventType(text)
	event := known.EventType
	if event == nil {
		event = c.EventType
	}
	c.PeopleCount = extract.PeopleCount(text)
	c.IndoorOutdoor = extract.IndoorOutdoor(text)
	c.Vibe = extract.Vibe(text, event, pack)
	if types.ConferenceLike(event, pack) {
		c.ConferenceDetails = extract.ConferenceDetails(text)
	}

	if start, end := extract.DateRange(text); start != "" {
		switch {
		case known.StartISO == nil:
			c.StartISO = types.Ptr(start)
			if end != "" {
				c.EndISO = types.Ptr(end)
			}
		case known.EndISO == nil && end != "":
			c.EndISO = types.Ptr(end)
		case known.EndISO == nil && (asked.Has(TopicEnd) || extract.ClosesRange(text)):
			c.EndISO = types.Ptr(start)
		}
	}

	c.DeliveryChoice = extract.DeliveryChoice(text)
	c.WithInstallation = extract.WithInstallation(text)
	delivery := known.DeliveryChoice
	if delivery == nil {
		delivery = c.DeliveryChoice
	}
	if delivery != nil && *delivery == types.DeliveryDelivery {
		c.Address = extract.Address(text)
		if asked.Has(TopicDepartment) {
			c.Department = extract.Department(text)
		} else {
			c.Department = extract.LocatedDepartment(text)
		}
	}
	return c
}
