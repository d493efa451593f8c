package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushbite/LoanAppBackend/internal/config"
	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/token"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:       "test-secret",
			ValidityDays: 7,
		},
		Auth: config.AuthConfig{
			AdminPIN:    "2001",
			CustomerPIN: "1002",
			BcryptCost:  bcrypt.MinCost,
		},
	}
}

func signUpInput(email, pin string) *SignUpInput {
	return &SignUpInput{
		FirstName: "Alice",
		LastName:  "Perera",
		Email:     email,
		Password:  "password123",
		PIN:       pin,
	}
}

func TestSignUp_AdminPIN(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	user, err := s.SignUp(context.Background(), signUpInput("alice@example.com", "2001"))
	require.NoError(t, err)
	require.Equal(t, string(domain.RoleAdmin), user.Role)
	require.NotEqual(t, "password123", user.Password)
}

func TestSignUp_CustomerPIN(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	user, err := s.SignUp(context.Background(), signUpInput("bob@example.com", "1002"))
	require.NoError(t, err)
	require.Equal(t, string(domain.RoleCustomer), user.Role)
}

func TestSignUp_InvalidPIN(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	for _, pin := range []string{"", "0000", "20011", " 2001"} {
		_, err := s.SignUp(context.Background(), signUpInput("carol@example.com", pin))
		require.ErrorIs(t, err, domain.ErrInvalidPIN, "pin %q", pin)
	}

	// No user may be persisted on a rejected PIN
	require.Equal(t, 0, users.count())
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	_, err := s.SignUp(context.Background(), signUpInput("dup@example.com", "2001"))
	require.NoError(t, err)

	_, err = s.SignUp(context.Background(), signUpInput("dup@example.com", "1002"))
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.Equal(t, 1, users.count())
}

func TestSignIn_TokenResolvesBackToUser(t *testing.T) {
	users := newFakeUserRepo()
	cfg := testConfig()
	s := NewAuthService(users, cfg)

	user, err := s.SignUp(context.Background(), signUpInput("dave@example.com", "1002"))
	require.NoError(t, err)

	tok, err := s.SignIn(context.Background(), &SignInInput{
		Email:    "dave@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := token.Validate(tok, cfg.JWT.Secret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	_, err := s.SignUp(context.Background(), signUpInput("eve@example.com", "1002"))
	require.NoError(t, err)

	_, err = s.SignIn(context.Background(), &SignInInput{
		Email:    "eve@example.com",
		Password: "not-the-password",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(users, testConfig())

	_, err := s.SignIn(context.Background(), &SignInInput{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
