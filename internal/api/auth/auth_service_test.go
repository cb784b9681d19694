package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderday/go-hangout-itinerary/config"
	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Register(ctx context.Context, username, email, hashedPassword string) (string, error) {
	args := m.Called(ctx, username, email, hashedPassword)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*types.UserAuth, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*types.UserAuth); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*types.UserAuth, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*types.UserAuth); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:      "test-secret-key",
		Issuer:         "hangout-planner-test",
		Audience:       "hangout-planner-app",
		AccessTokenTTL: time.Hour,
	}
}

func TestRegisterSuccess(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Register", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
		Return("user-123", nil).
		Run(func(args mock.Arguments) {
			// The repository must receive a bcrypt hash, never the raw password.
			hash := args.String(3)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-password")))
		}).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	resp, err := service.Register(context.Background(), "alice", "alice@example.com", "s3cret-password")
	require.NoError(t, err)

	assert.Equal(t, "user-123", resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)

	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "hangout-planner-test", claims.Issuer)

	mockRepo.AssertExpectations(t)
}

func TestRegisterEmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Register", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
		Return("", ErrEmailTaken).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	_, err := service.Register(context.Background(), "alice", "alice@example.com", "s3cret-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&types.UserAuth{ID: "user-123", Username: "alice", Email: "alice@example.com", Password: string(hash)}, nil).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	resp, err := service.Login(context.Background(), "alice@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&types.UserAuth{ID: "user-123", Email: "alice@example.com", Password: string(hash)}, nil).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	_, err = service.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, ErrUserNotFound).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(nil, repoErr).Once()

	service := NewService(mockRepo, testJWTConfig(), slog.Default())

	_, err := service.Login(context.Background(), "alice@example.com", "s3cret-password")
	assert.ErrorIs(t, err, repoErr)
}
