package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
)

// CenterHandler handles center endpoints
type CenterHandler struct {
	ledgerService *services.LedgerService
}

// NewCenterHandler creates a new center handler
func NewCenterHandler(ledgerService *services.LedgerService) *CenterHandler {
	return &CenterHandler{ledgerService: ledgerService}
}

// CreateCenterRequest represents the center creation request body
type CreateCenterRequest struct {
	CenterNo   int64  `json:"centerNo"`
	CenterName string `json:"centerName"`
}

// Create handles center registration (admin only)
// @Summary Register a new center
// @Tags Center
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/center [post]
func (h *CenterHandler) Create(c *fiber.Ctx) error {
	var req CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CenterNo <= 0 {
		return response.BadRequest(c, "Center number is required")
	}
	if strings.TrimSpace(req.CenterName) == "" {
		return response.BadRequest(c, "Center name is required")
	}

	center, err := h.ledgerService.CreateCenter(c.Context(), req.CenterNo, strings.TrimSpace(req.CenterName))
	if err != nil {
		if errors.Is(err, domain.ErrCenterExists) {
			return response.Conflict(c, "Center already exists")
		}
		return response.InternalServerError(c, "Failed to create center")
	}

	return response.Created(c, "Center saved successfully", center.ToResponse())
}

// List handles listing all centers (admin only)
// @Summary List all centers
// @Tags Center
// @Produce json
// @Security BearerAuth
// @Router /api/center [get]
func (h *CenterHandler) List(c *fiber.Ctx) error {
	centers, err := h.ledgerService.ListCenters(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list centers")
	}

	return response.Success(c, "", fiber.Map{
		"centers": centers,
	})
}
