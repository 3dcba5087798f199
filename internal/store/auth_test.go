package store

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
)

type fakeAuthAPI struct {
	loginUser   *model.AuthUser
	loginErr    error
	profileErr  error
	passwordErr error
}

func (f *fakeAuthAPI) Register(ctx context.Context, req api.RegisterRequest) (*model.AuthUser, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuthAPI) Login(ctx context.Context, req api.LoginRequest) (*model.AuthUser, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	return f.profileErr
}

func (f *fakeAuthAPI) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	return f.passwordErr
}

// memTokens is an in-memory token store; removeErr simulates a broken disk.
type memTokens struct {
	token     string
	removeErr error
}

func (m *memTokens) Get() (string, error)   { return m.token, nil }
func (m *memTokens) Set(token string) error { m.token = token; return nil }

func (m *memTokens) Remove() error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.token = ""
	return nil
}

func newAuthFixture(cli *fakeAuthAPI, tokens *memTokens) (*AuthStore, *TokenHolder) {
	holder := NewTokenHolder()
	return NewAuthStore(cli, holder, tokens, nil, zap.NewNop()), holder
}

func TestLoginEstablishesSession(t *testing.T) {
	cli := &fakeAuthAPI{loginUser: &model.AuthUser{
		Email: "a@b.c", FirstName: "Asha", Role: model.RoleUser, Token: "jwt-1",
	}}
	tokens := &memTokens{}
	s, holder := newAuthFixture(cli, tokens)

	user, err := s.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FirstName)

	state := s.State()
	assert.Equal(t, "jwt-1", state.Token)
	assert.Equal(t, "a@b.c", state.User.Email)
	assert.False(t, state.Loading)

	// Session material lands in the holder and on disk.
	assert.Equal(t, "jwt-1", holder.Token())
	assert.Equal(t, "jwt-1", tokens.token)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	cli := &fakeAuthAPI{loginUser: &model.AuthUser{Email: "a@b.c", Token: "jwt-1"}}
	tokens := &memTokens{}
	s, holder := newAuthFixture(cli, tokens)
	_, err := s.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	cli.loginErr = errors.New("invalid credentials")
	_, err = s.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "bad"})
	require.Error(t, err)

	state := s.State()
	assert.Equal(t, "invalid credentials", state.Err)
	assert.Equal(t, "jwt-1", state.Token)
	assert.Equal(t, "jwt-1", holder.Token())
	require.NotNil(t, state.User)
}

func TestLogoutIsUnconditional(t *testing.T) {
	cli := &fakeAuthAPI{loginUser: &model.AuthUser{Email: "a@b.c", Token: "jwt-1"}}
	tokens := &memTokens{removeErr: errors.New("disk gone")}
	s, holder := newAuthFixture(cli, tokens)
	_, err := s.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	// Persisted removal fails, the in-memory sign-out still happens.
	s.Logout()
	state := s.State()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
	assert.Empty(t, holder.Token())
}

func TestLoadStoredTokenRestoresTokenOnly(t *testing.T) {
	s, holder := newAuthFixture(&fakeAuthAPI{}, &memTokens{token: "jwt-old"})

	token, err := s.LoadStoredToken()
	require.NoError(t, err)
	assert.Equal(t, "jwt-old", token)
	assert.Equal(t, "jwt-old", holder.Token())

	// The profile is not persisted; the user stays unknown until login.
	state := s.State()
	assert.Equal(t, "jwt-old", state.Token)
	assert.Nil(t, state.User)
}

func TestLoadStoredTokenEmptyStore(t *testing.T) {
	s, holder := newAuthFixture(&fakeAuthAPI{}, &memTokens{})

	token, err := s.LoadStoredToken()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, holder.Token())
}

func TestUpdateProfilePatchesNames(t *testing.T) {
	cli := &fakeAuthAPI{loginUser: &model.AuthUser{
		Email: "a@b.c", FirstName: "Asha", LastName: "K", Token: "jwt-1",
	}}
	s, _ := newAuthFixture(cli, &memTokens{})
	_, err := s.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateProfile(context.Background(), "Asha", "Kumar"))
	state := s.State()
	assert.Equal(t, "Kumar", state.User.LastName)
	assert.Equal(t, "a@b.c", state.User.Email)
}

func TestChangePasswordFailureSetsError(t *testing.T) {
	cli := &fakeAuthAPI{passwordErr: errors.New("old password incorrect")}
	s, _ := newAuthFixture(cli, &memTokens{})

	err := s.ChangePassword(context.Background(), "old", "new")
	require.Error(t, err)
	assert.Equal(t, "old password incorrect", s.State().Err)

	s.ClearError()
	assert.Empty(t, s.State().Err)
}
