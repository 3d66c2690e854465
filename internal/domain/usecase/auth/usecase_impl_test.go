package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	_ "todo-api/configs"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/model"
	"todo-api/internal/testutil/mocks"
	"todo-api/pkg/security"
)

var ctx = context.Background()

type fixture struct {
	uc      UseCase
	users   *mocks.UserGateway
	limiter *mocks.LoginLimiter
	tokens  *security.TokenService
	now     time.Time
	user    *entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("secret")
	require.NoError(t, err)

	f := &fixture{
		users:   &mocks.UserGateway{},
		limiter: &mocks.LoginLimiter{},
		now:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		user:    &entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: hashed},
	}
	f.tokens = security.NewTokenService("test-secret", 30*time.Minute, security.WithClock(func() time.Time { return f.now }))
	f.uc = NewAuthUseCase(f.users, hasher, f.tokens, f.limiter)
	return f
}

func TestLogin_IssuesTokenForEmail(t *testing.T) {
	f := newFixture(t)
	f.limiter.On("Blocked", ctx, "alice@example.com").Return(false, nil)
	f.limiter.On("Succeed", ctx, "alice@example.com").Return(nil)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(f.user, nil)

	token, err := f.uc.Login(ctx, model.LoginForm{Username: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := f.tokens.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	f.limiter.AssertExpectations(t)
}

func TestLogin_WrongPasswordOrUnknownEmail(t *testing.T) {
	f := newFixture(t)
	f.limiter.On("Blocked", ctx, mock.Anything).Return(false, nil)
	f.limiter.On("Fail", ctx, mock.Anything).Return(nil)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(f.user, nil)
	f.users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, err := f.uc.Login(ctx, model.LoginForm{Username: "alice@example.com", Password: "wrong"})
	require.True(t, exception.Is(err, exception.KindUnauthorized))
	assert.Equal(t, "Incorrect email or password", err.Error())

	_, err = f.uc.Login(ctx, model.LoginForm{Username: "ghost@example.com", Password: "secret"})
	assert.True(t, exception.Is(err, exception.KindUnauthorized))

	f.limiter.AssertNumberOfCalls(t, "Fail", 2)
	f.limiter.AssertNotCalled(t, "Succeed", mock.Anything, mock.Anything)
}

func TestLogin_Blocked(t *testing.T) {
	f := newFixture(t)
	f.limiter.On("Blocked", ctx, "alice@example.com").Return(true, nil)

	_, err := f.uc.Login(ctx, model.LoginForm{Username: "alice@example.com", Password: "secret"})
	assert.True(t, exception.Is(err, exception.KindTooManyRequests))
	f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_LimiterFailureDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	down := errors.New("redis down")
	f.limiter.On("Blocked", ctx, "alice@example.com").Return(false, down)
	f.limiter.On("Succeed", ctx, "alice@example.com").Return(down)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(f.user, nil)

	token, err := f.uc.Login(ctx, model.LoginForm{Username: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)
	issued, err := f.tokens.Issue("alice@example.com")
	require.NoError(t, err)

	f.now = f.now.Add(10 * time.Minute)
	refreshed, err := f.uc.Refresh(ctx, issued)
	require.NoError(t, err)
	assert.NotEqual(t, issued, refreshed.AccessToken)

	f.now = f.now.Add(31 * time.Minute)
	_, err = f.uc.Refresh(ctx, issued)
	require.True(t, exception.Is(err, exception.KindUnauthorized))
	assert.Equal(t, "Could not validate credentials", err.(*exception.Error).Detail)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(f.user, nil)
	f.users.On("FindByEmail", ctx, "gone@example.com").Return(nil, nil)

	token, err := f.tokens.Issue("alice@example.com")
	require.NoError(t, err)
	user, err := f.uc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, user.ID)

	orphan, err := f.tokens.Issue("gone@example.com")
	require.NoError(t, err)
	_, err = f.uc.Authenticate(ctx, orphan)
	assert.True(t, exception.Is(err, exception.KindUnauthorized))

	_, err = f.uc.Authenticate(ctx, "not-a-token")
	assert.True(t, exception.Is(err, exception.KindUnauthorized))
}
