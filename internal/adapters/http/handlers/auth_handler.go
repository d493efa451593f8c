package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/password"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
)

// AuthHandler handles signup and signin endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents the signup request body
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	PIN       string `json:"pin"`
}

// SignInRequest represents the signin request body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles user registration
// @Summary Register new user
// @Tags Auth
// @Accept json
// @Produce json
// @Router /api/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" {
		return response.BadRequest(c, "First name is required")
	}
	if req.LastName == "" {
		return response.BadRequest(c, "Last name is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return response.BadRequest(c, "A valid email is required")
	}
	if !password.Acceptable(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}
	if req.PIN == "" {
		return response.BadRequest(c, "Pin is required")
	}

	input := &services.SignUpInput{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  req.Password,
		PIN:       strings.TrimSpace(req.PIN),
	}

	if _, err := h.authService.SignUp(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPIN):
			return response.BadRequest(c, "Invalid PIN")
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "User with the given email already exists")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", nil)
}

// SignIn handles user login
// @Summary Authenticate user and return an identity token
// @Tags Auth
// @Accept json
// @Produce json
// @Router /api/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SignInInput{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	}

	tok, err := h.authService.SignIn(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to sign in")
	}

	return response.Success(c, "Logged in successfully", fiber.Map{
		"token": tok,
	})
}
