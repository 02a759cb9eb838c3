package service

import (
	"errors"
	"time"

	apperrors "event-admin-api/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a session token.
type Claims struct {
	User string
}

// AuthServiceConfig holds the admin credentials and signing secret,
// injected once at startup.
type AuthServiceConfig struct {
	AdminUser     string
	AdminPassword string
	JWTSecret     string
	TokenExpiry   time.Duration
}

// AuthService is the credential check and token gate for the admin API.
type AuthService interface {
	// Login issues a signed session token for the configured admin account.
	Login(username, password string) (string, error)
	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	config *AuthServiceConfig
}

func NewAuthService(config *AuthServiceConfig) AuthService {
	if config.TokenExpiry == 0 {
		config.TokenExpiry = 24 * time.Hour
	}
	return &authService{config: config}
}

func (s *authService) Login(username, password string) (string, error) {
	// A single configured admin account; wrong username and wrong password
	// are indistinguishable to the caller.
	if username != s.config.AdminUser || password != s.config.AdminPassword {
		return "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": username,
		"iat":  now.Unix(),
		"exp":  now.Add(s.config.TokenExpiry).Unix(),
	})

	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	user, _ := claims["user"].(string)
	return &Claims{User: user}, nil
}
