package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	ledgerService   *services.LedgerService
	overviewService *services.OverviewService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(ledgerService *services.LedgerService, overviewService *services.OverviewService) *PaymentHandler {
	return &PaymentHandler{
		ledgerService:   ledgerService,
		overviewService: overviewService,
	}
}

// AppendPaymentRequest represents the payment recording request body
type AppendPaymentRequest struct {
	LoanID string  `json:"loanId"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Append handles recording one payment against a loan (any authenticated
// identity)
// @Summary Record a payment against a loan
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/payment [post]
func (h *PaymentHandler) Append(c *fiber.Ctx) error {
	var req AppendPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.LoanID) == "" {
		return response.BadRequest(c, "Loan id is required")
	}
	if req.Amount < 0 {
		return response.BadRequest(c, "Amount must not be negative")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return response.BadRequest(c, "Invalid payment date")
	}

	loan, err := h.ledgerService.AppendPayment(c.Context(), strings.TrimSpace(req.LoanID), date, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must not be negative")
		default:
			return response.InternalServerError(c, "Failed to record payment")
		}
	}

	return response.Success(c, "Payment recorded successfully", fiber.Map{
		"loanId":   loan.LoanID,
		"payments": loan.Payments,
	})
}

// Overview handles the center → member → loan ids view (any authenticated
// identity)
// @Summary List every center with its members and their loan ids
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Router /api/payment [get]
func (h *PaymentHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.overviewService.PaymentOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build payment overview")
	}

	return response.Success(c, "", overview)
}
