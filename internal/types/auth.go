package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// UserAuth is the stored identity record backing register/login.
type UserAuth struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt hash
	CreatedAt time.Time
}

// UserProfile is the user payload returned to the client.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the session payload returned by register and login.
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}
