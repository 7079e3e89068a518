package service

import (
	"context"
	"errors"
	"fmt"

	"lostlinked/internal/model"
	"lostlinked/internal/repository"
	"lostlinked/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)

// AuthService provides login and token-based request authentication
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Login verifies the credentials and issues an access token. A missing
// user and a wrong password are indistinguishable to the caller so the
// failure never reveals whether the username exists.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user. The user is re-read
// from storage on every call, never cached, so a deleted account loses
// access immediately even while its token is unexpired.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	username, err := s.jwtUtil.ValidateToken(tokenString)
	if err != nil {
		log.Debug().Err(err).
			Bool("expired", errors.Is(err, jwt.ErrTokenExpired)).
			Msg("token validation failed")
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
