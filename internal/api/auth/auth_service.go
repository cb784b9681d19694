package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderday/go-hangout-itinerary/config"
	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for authentication.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*types.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*types.AuthResponse, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	jwtCfg config.JWTConfig
}

func NewService(repo Repository, jwtCfg config.JWTConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		jwtCfg: jwtCfg,
	}
}

// Register creates a user and returns a fresh session payload.
func (s *ServiceImpl) Register(ctx context.Context, username, email, password string) (*types.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.repo.Register(ctx, username, email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	accessToken, err := s.generateAccessToken(userID, username, email)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User registered", slog.String("user_id", userID))
	return &types.AuthResponse{
		AccessToken: accessToken,
		User:        types.UserProfile{ID: userID, Username: username, Email: email},
	}, nil
}

// Login verifies credentials and returns a session payload.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	return &types.AuthResponse{
		AccessToken: accessToken,
		User:        types.UserProfile{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}

func (s *ServiceImpl) generateAccessToken(userID, username, email string) (string, error) {
	now := time.Now()
	claims := types.Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
