package interfaces

import (
	"election-monitor/internal/auth"
	"election-monitor/internal/mockdata"
)

// AuthServiceInterface is the auth surface handlers and middleware use
type AuthServiceInterface interface {
	Login(email, password string) (*auth.TokenPair, *mockdata.User, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
	ValidateToken(token string) (*auth.Claims, error)
}
