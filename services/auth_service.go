package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ccojocar/zxcvbn-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/storage"
)

// minPasswordScore is the lowest accepted zxcvbn score (0-4)
const minPasswordScore = 2

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrUserExists         = errors.New("user already exists")
)

// CredentialStore is the part of the request store that keeps credentials
type CredentialStore interface {
	AddUser(ctx context.Context, username, password string) error
	GetUser(ctx context.Context, username string) (string, error)
}

// AuthService interface defines login and user management logic
type AuthService interface {
	Authenticate(ctx context.Context, form *models.LoginForm) (string, error)
	CreateUser(ctx context.Context, form *models.UserForm) error
	SeedUser(ctx context.Context, username, password string) error
}

type authService struct {
	store  CredentialStore
	logger *zap.SugaredLogger
	cost   int
}

// NewAuthService creates a new auth service
func NewAuthService(store CredentialStore, logger *zap.SugaredLogger) AuthService {
	return &authService{
		store:  store,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

// Authenticate checks the login form and returns the canonical username
func (s *authService) Authenticate(ctx context.Context, form *models.LoginForm) (string, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return "", fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}
	username := strings.TrimSpace(form.Username)

	hash, err := s.store.GetUser(ctx, username)
	if errors.Is(err, storage.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(form.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return username, nil
}

// CreateUser validates the form, rejects weak passwords and stores a hash
func (s *authService) CreateUser(ctx context.Context, form *models.UserForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}
	username := strings.TrimSpace(form.Username)

	if score := zxcvbn.PasswordStrength(form.Password, []string{username}).Score; score < minPasswordScore {
		return ErrWeakPassword
	}

	exists, err := s.exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	if err := s.save(ctx, username, form.Password); err != nil {
		return err
	}
	s.logger.Infow("User created", "username", username)
	return nil
}

// SeedUser creates the bootstrap user unless it exists already
func (s *authService) SeedUser(ctx context.Context, username, password string) error {
	exists, err := s.exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debugw("Seed user already present", "username", username)
		return nil
	}

	if score := zxcvbn.PasswordStrength(password, []string{username}).Score; score < minPasswordScore {
		s.logger.Warnw("Seed user password is weak", "username", username, "score", score)
	}
	if err := s.save(ctx, username, password); err != nil {
		return err
	}
	s.logger.Infow("Seed user created", "username", username)
	return nil
}

func (s *authService) exists(ctx context.Context, username string) (bool, error) {
	_, err := s.store.GetUser(ctx, username)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrUserNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to load user: %w", err)
	}
}

func (s *authService) save(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.store.AddUser(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}
