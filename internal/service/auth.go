package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/repository"
)

var (
	// ErrEmailTaken is returned when a signup email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// bcrypt silently truncates beyond 72 bytes; reject instead
const maxPasswordBytes = 72

// ErrPasswordTooLong is returned when a password exceeds the bcrypt limit
var ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Age:          req.Age,
		Gender:       req.Gender,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Ctx(ctx).Info("user registered", logger.Int64("user_id", user.ID))

	return &models.AuthResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	logger.Ctx(ctx).Info("user logged in", logger.Int64("user_id", user.ID))

	return &models.AuthResponse{
		Message: "Login successful",
		UserID:  user.ID,
	}, nil
}
