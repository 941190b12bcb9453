package services

import (
	"context"
	"errors"
	"fmt"

	"jobsapi/internal/models"
	"jobsapi/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored password hashes.
const PasswordCost = 10

// dummyHash is compared against when the email is unknown so both login
// failure paths do the same amount of work.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)

// AccountService handles registration and login.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*models.AuthResponse, error)
	Login(ctx context.Context, in LoginInput) (*models.AuthResponse, error)
}

type accountService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAccountService(userRepo repositories.UserRepository, tokens TokenService) AccountService {
	return &accountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *accountService) Register(ctx context.Context, in RegisterInput) (*models.AuthResponse, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  models.UserSummary{Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}

// Login verifies the credentials. The reply carries only the user's name.
func (s *accountService) Login(ctx context.Context, in LoginInput) (*models.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  models.UserSummary{Name: user.Name},
		Token: token,
	}, nil
}
