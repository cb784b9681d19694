package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// MockAuthService is a mock implementation of the Service interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*types.AuthResponse, error) {
	args := m.Called(ctx, username, email, password)
	if resp, ok := args.Get(0).(*types.AuthResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if resp, ok := args.Get(0).(*types.AuthResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)
	return rr
}

func TestRegisterHandler(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret").
		Return(&types.AuthResponse{
			AccessToken: "token-abc",
			User:        types.UserProfile{ID: "user-123", Username: "alice", Email: "alice@example.com"},
		}, nil).Once()

	handler := NewHandler(mockService, slog.Default())
	rr := postJSON(t, handler.Register, "/api/register", `{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, "alice", resp.User.Username)
	mockService.AssertExpectations(t)
}

func TestRegisterHandlerMissingFields(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewHandler(mockService, slog.Default())

	rr := postJSON(t, handler.Register, "/api/register", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "Register")
}

func TestRegisterHandlerEmailTaken(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret").
		Return(nil, ErrEmailTaken).Once()

	handler := NewHandler(mockService, slog.Default())
	rr := postJSON(t, handler.Register, "/api/register", `{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email")
}

func TestLoginHandler(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "alice@example.com", "s3cret").
		Return(&types.AuthResponse{
			AccessToken: "token-abc",
			User:        types.UserProfile{ID: "user-123", Username: "alice", Email: "alice@example.com"},
		}, nil).Once()

	handler := NewHandler(mockService, slog.Default())
	rr := postJSON(t, handler.Login, "/api/login", `{"email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, ErrInvalidCredentials).Once()

	handler := NewHandler(mockService, slog.Default())
	rr := postJSON(t, handler.Login, "/api/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
