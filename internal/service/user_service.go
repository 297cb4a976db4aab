package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"taskboard/internal/auth"
	"taskboard/internal/entity"
	"taskboard/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService enforces registration invariants and delegates persistence to
// the credential store.
type UserService struct {
	repo model.Repository
}

// NewUserService creates a user service instance.
func NewUserService(repo model.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with the given role. ADMIN is not assignable
// through this path; use RegisterAdmin for bootstrap accounts.
func (s *UserService) Register(ctx context.Context, username, password, role string) (*entity.DbUser, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("credential store: %w", ErrUnavailable)
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: must not be blank", ErrPasswordValidation)
	}
	if err := validateRegistrationRole(role); err != nil {
		return nil, err
	}

	logrus.WithField("username", username).Info("registering user")

	return s.createUser(ctx, username, password, role)
}

// RegisterAdmin is the privileged registration path. It is not reachable from
// any public endpoint; the server uses it to seed the bootstrap admin row.
func (s *UserService) RegisterAdmin(ctx context.Context, username, password string) (*entity.DbUser, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("credential store: %w", ErrUnavailable)
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: must not be blank", ErrPasswordValidation)
	}

	logrus.WithField("username", username).Info("registering admin user")

	return s.createUser(ctx, username, password, entity.RoleAdmin)
}

func (s *UserService) createUser(ctx context.Context, username, password, role string) (*entity.DbUser, error) {
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, username)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.DbUser{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the unique index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, username)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("credential store: %w", ErrUnavailable)
	}

	logrus.WithField("user_id", id).Info("deleting user")

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user with id %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// GetAll returns all stored users. Password hashes stay internal; the entity
// never serialises them.
func (s *UserService) GetAll(ctx context.Context) ([]entity.DbUser, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("credential store: %w", ErrUnavailable)
	}
	return s.repo.ListUsers(ctx)
}

// UsernameExists reports whether the exact username is already stored.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if s == nil || s.repo == nil {
		return false, fmt.Errorf("credential store: %w", ErrUnavailable)
	}
	return s.repo.UsernameExists(ctx, username)
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username must not be blank", ErrValidation)
	}
	// Bounds are in characters, matching the min=3,max=20 binding tags.
	if n := utf8.RuneCountInString(username); n < entity.UsernameMinLen || n > entity.UsernameMaxLen {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrValidation, entity.UsernameMinLen, entity.UsernameMaxLen)
	}
	return nil
}

func validateRegistrationRole(role string) error {
	if role == "" {
		return fmt.Errorf("%w: role must not be empty", ErrValidation)
	}
	if role == entity.RoleAdmin {
		return fmt.Errorf("%w: admin registration is not allowed through this path", ErrValidation)
	}
	if !entity.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return nil
}
