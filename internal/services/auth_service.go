package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/pkg/utils"
)

// RoleEmployee is the role carried by every employee session.
const RoleEmployee = "Employee"

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// AuthResponse DTO
type AuthResponse struct {
	Employee    models.Employee `json:"employee"`
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req models.Credentials) (*AuthResponse, error)
}

type authService struct{}

// NewAuthService creates a new instance of AuthService. Tokens are signed with
// the secret configured through utils.ConfigureJWT.
func NewAuthService() AuthService {
	return &authService{}
}

// Login accepts any non-blank username and password; there is no account store.
func (s *authService) Login(req models.Credentials) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || utils.IsEmpty(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateAccessToken(username, RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &AuthResponse{
		Employee:    models.Employee{Username: username, Role: RoleEmployee},
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
