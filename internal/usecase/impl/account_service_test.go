package impl

import (
	"context"
	"strconv"
	"testing"

	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	userRepo *fakeUserRepo
	tokens   stubTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       stubHasher{},
		TokenService: stubTokenService{},
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{service: service, userRepo: userRepo}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	output, err := fixtures.service.Signup(ctx, &usecase.SignupInput{
		Name:     "Alice",
		Username: "alice",
		Password: "pw1",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	assert.NotZero(t, output.User.ID)
	assert.Equal(t, "Alice", output.User.Name)
	assert.Equal(t, "alice", output.User.Username)
	// The plaintext is never stored.
	assert.NotEqual(t, "pw1", output.User.PasswordHash)
	assert.Equal(t, "hashed:pw1", output.User.PasswordHash)
}

func TestAccountService_Signup_DuplicateUsername(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Signup(ctx, &usecase.SignupInput{Name: "Alice", Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = fixtures.service.Signup(ctx, &usecase.SignupInput{Name: "Mallory", Username: "alice", Password: "pw2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	signup, err := fixtures.service.Signup(ctx, &usecase.SignupInput{Name: "Alice", Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	login, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	// The token's verified identity matches the created user's identity.
	claims, err := fixtures.tokens.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(signup.User.ID, 10), claims.UserID())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Signup(ctx, &usecase.SignupInput{Name: "Alice", Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "pw1"})
	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown username fails with the same domain error as a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
