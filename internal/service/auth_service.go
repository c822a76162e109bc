package service

import (
	"context"
	"fmt"

	"secure_solicitudes/internal/repository"
	"secure_solicitudes/internal/utils"
)

// AuthService provides login and token verification
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) (int, error)
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

// Login authenticates a user and returns a JWT token
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

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// VerifyToken returns the subject user id of a valid token.
// The error wraps utils.ErrMalformedToken or utils.ErrInvalidSignature.
func (s *authService) VerifyToken(token string) (int, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
