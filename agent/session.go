package agent

import (
	"context"
	"errors"

	"github.com/tbxark/quoteagent/types"
)

var ErrNilSession = errors.New("nil session")

// Session holds the per-conversation options that the transcript itself
// does not carry.
type Session struct {
	Pack     types.PackKey         `json:"pack,omitempty"`
	Scenario string                `json:"scenario,omitempty"`
	Product  *types.ProductContext `json:"product,omitempty"`
	Locale   types.Locale          `json:"locale,omitempty"`
}

type SessionStore struct {
	store Store[*Session]
}

func NewSessionStore(core Cache[*Session]) *SessionStore {
	return &SessionStore{store: NewStore(core, "agent:session", ConversationKeyFromContext)}
}

func NewMemorySessionStore() *SessionStore {
	return NewSessionStore(NewMemoryCache[*Session]())
}

// Load returns the stored session, or a free-mode French session when none
// was saved for the conversation.
func (s *SessionStore) Load(ctx context.Context) (*Session, error) {
	session, ok, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || session == nil {
		return &Session{Locale: types.LocaleFR}, nil
	}
	return session, nil
}

// Save stores a copy of session with an unknown pack dropped and the
// locale resolved.
func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrNilSession
	}
	saved := *session
	if !saved.Pack.Valid() {
		saved.Pack = types.PackNone
	}
	saved.Locale = saved.Locale.Resolve()
	return s.store.Set(ctx, &saved)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.store.Del(ctx)
}
