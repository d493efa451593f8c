package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
	"github.com/ayushbite/LoanAppBackend/internal/config"
	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/password"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/token"
)

// AuthService handles signup and signin business logic
type AuthService struct {
	users repositories.UserRepository
	cfg   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

// SignUpInput represents signup input
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	PIN       string
}

// SignInInput represents signin input
type SignInInput struct {
	Email    string
	Password string
}

// SignUp registers a new user. The submitted PIN selects the role: equality
// with the admin secret yields admin, equality with the customer secret
// yields customer, anything else is rejected and nothing is persisted.
func (s *AuthService) SignUp(ctx context.Context, input *SignUpInput) (*models.User, error) {
	role := s.resolveRole(input.PIN)
	if !role.Valid() {
		return nil, domain.ErrInvalidPIN
	}

	// Friendly pre-check; the unique index on email is what actually
	// guarantees no duplicate survives a concurrent signup race.
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashed,
		Role:      string(role),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("✅ User signed up: %s [role: %s]", user.Email, user.Role)
	return user, nil
}

// SignIn authenticates a user and issues an identity token
func (s *AuthService) SignIn(ctx context.Context, input *SignInInput) (string, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(input.Password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	tok, err := token.Generate(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ValidityDays)
	if err != nil {
		return "", err
	}

	log.Printf("✅ User signed in: %s", user.Email)
	return tok, nil
}

// resolveRole maps the signup PIN to a role by exact match against the
// configured shared secrets. Empty PINs never match.
func (s *AuthService) resolveRole(pin string) domain.Role {
	if pin == "" {
		return ""
	}
	switch pin {
	case s.cfg.Auth.AdminPIN:
		return domain.RoleAdmin
	case s.cfg.Auth.CustomerPIN:
		return domain.RoleCustomer
	}
	return ""
}
