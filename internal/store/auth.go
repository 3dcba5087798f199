package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
	"github.com/freshcart/freshcart-go/internal/tokenstore"
)

// AuthAPI is the slice of the backend the auth store needs.
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*model.AuthUser, error)
	Login(ctx context.Context, req api.LoginRequest) (*model.AuthUser, error)
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error
}

// AuthState: Token without User happens after a cold-start token restore;
// downstream code must tolerate that combination until the next login.
type AuthState struct {
	User    *model.AuthUser
	Token   string
	Loading bool
	Err     string
}

// AuthStore owns the session: it is the only writer of the token holder
// and of the persisted token.
type AuthStore struct {
	mu     sync.RWMutex
	api    AuthAPI
	holder *TokenHolder
	tokens tokenstore.Store
	bus    EventBus.Bus
	log    *zap.Logger

	user    *model.AuthUser
	loading bool
	err     string
}

func NewAuthStore(cli AuthAPI, holder *TokenHolder, tokens tokenstore.Store, bus EventBus.Bus, log *zap.Logger) *AuthStore {
	return &AuthStore{api: cli, holder: holder, tokens: tokens, bus: bus, log: log}
}

func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := AuthState{Token: s.holder.Token(), Loading: s.loading, Err: s.err}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}

// Token implements api.TokenSource reads for callers holding the store
// rather than the holder.
func (s *AuthStore) Token() string { return s.holder.Token() }

func (s *AuthStore) Register(ctx context.Context, req api.RegisterRequest) (*model.AuthUser, error) {
	s.begin()
	user, err := s.api.Register(ctx, req)
	if err != nil {
		s.fail("register", err)
		return nil, err
	}
	s.establish(user)
	return user, nil
}

func (s *AuthStore) Login(ctx context.Context, req api.LoginRequest) (*model.AuthUser, error) {
	s.begin()
	user, err := s.api.Login(ctx, req)
	if err != nil {
		s.fail("login", err)
		return nil, err
	}
	s.establish(user)
	return user, nil
}

// Logout transitions unconditionally: the persisted removal is attempted
// but a failure there never blocks the in-memory sign-out.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.mu.Unlock()
	s.holder.set("")
	if err := s.tokens.Remove(); err != nil {
		s.log.Warn("failed to clear persisted token", zap.Error(err))
	}
	s.notify()
}

// LoadStoredToken is the cold-start bootstrap. It restores only the token;
// the user profile stays nil until the next login.
func (s *AuthStore) LoadStoredToken() (string, error) {
	token, err := s.tokens.Get()
	if err != nil {
		s.log.Warn("failed to read stored token", zap.Error(err))
		return "", err
	}
	if token == "" {
		s.log.Debug("no token in storage")
		return "", nil
	}
	s.holder.set(token)
	s.notify()
	return token, nil
}

// UpdateProfile patches the in-memory names on success; the backend
// returns no body to replace the user with.
func (s *AuthStore) UpdateProfile(ctx context.Context, firstName, lastName string) error {
	s.begin()
	err := s.api.UpdateProfile(ctx, api.UpdateProfileRequest{FirstName: firstName, LastName: lastName})
	if err != nil {
		s.fail("update profile", err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	if s.user != nil {
		s.user.FirstName = firstName
		s.user.LastName = lastName
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *AuthStore) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s.begin()
	err := s.api.ChangePassword(ctx, api.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	if err != nil {
		s.fail("change password", err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	if s.err == "" {
		s.mu.Unlock()
		return
	}
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// fail records the message and leaves the current user and token untouched.
func (s *AuthStore) fail(op string, err error) {
	s.log.Error("auth operation failed", zap.String("op", op), zap.Error(err))
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) establish(user *model.AuthUser) {
	s.mu.Lock()
	s.loading = false
	s.user = user
	s.mu.Unlock()
	s.holder.set(user.Token)
	if user.Token != "" {
		if err := s.tokens.Set(user.Token); err != nil {
			s.log.Warn("failed to persist token", zap.Error(err))
		}
	}
	s.notify()
}

func (s *AuthStore) notify() {
	if s.bus != nil {
		s.bus.Publish(TopicAuth)
	}
}
