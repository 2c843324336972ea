package agent

import (
	"context"
	"errors"
)

var ErrNoConversationKey = errors.New("no conversation key in context")

type conversationKeyContext struct{}

// WithConversationKey routes history and session lookups made with ctx to
// one conversation.
func WithConversationKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, conversationKeyContext{}, key)
}

func ConversationKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(conversationKeyContext{}).(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Store scopes a Cache to a namespace and a per-request key.
type Store[S any] struct {
	core      Cache[S]
	namespace string
	keyFn     func(ctx context.Context) (string, bool)
}

func NewStore[S any](core Cache[S], namespace string, keyFn func(ctx context.Context) (string, bool)) Store[S] {
	if keyFn == nil {
		keyFn = ConversationKeyFromContext
	}
	return Store[S]{
		core:      core,
		namespace: namespace,
		keyFn:     keyFn,
	}
}

func (s Store[S]) key(ctx context.Context) (string, error) {
	key, ok := s.keyFn(ctx)
	if !ok {
		return "", ErrNoConversationKey
	}
	return s.namespace + ":" + key, nil
}

func (s Store[S]) Set(ctx context.Context, val S) error {
	key, err := s.key(ctx)
	if err != nil {
		return err
	}
	return s.core.Set(ctx, key, val)
}

func (s Store[S]) Get(ctx context.Context) (S, bool, error) {
	key, err := s.key(ctx)
	if err != nil {
		var zero S
		return zero, false, err
	}
	return s.core.Get(ctx, key)
}

func (s Store[S]) Del(ctx context.Context) error {
	key, err := s.key(ctx)
	if err != nil {
		return err
	}
	return s.core.Del(ctx, key)
}

func (s Store[S]) Exists(ctx context.Context) (bool, error) {
	key, err := s.key(ctx)
	if err != nil {
		return false, err
	}
	return s.core.Exists(ctx, key)
}
