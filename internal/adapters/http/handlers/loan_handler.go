package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	ledgerService   *services.LedgerService
	overviewService *services.OverviewService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(ledgerService *services.LedgerService, overviewService *services.OverviewService) *LoanHandler {
	return &LoanHandler{
		ledgerService:   ledgerService,
		overviewService: overviewService,
	}
}

// CreateLoanRequest represents the loan origination request body. Dates are
// accepted as "2006-01-02" or RFC 3339.
type CreateLoanRequest struct {
	CenterNo     int64   `json:"centerNo"`
	MemberCode   string  `json:"memberCode"`
	LoanSetup    string  `json:"loanSetup"`
	LoanAmount   float64 `json:"loanAmount"`
	InterestRate float64 `json:"interestRate"`
	LoanDate     string  `json:"loanDate"`
	Month        int     `json:"month"`
	Week         int     `json:"week"`
	MaturityDate string  `json:"maturityDate"`
	NicNo        string  `json:"nicNo"`
}

// parseDate parses a request date in "2006-01-02" or RFC 3339 form
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Create handles loan origination (admin only)
// @Summary Originate a loan against an existing member
// @Tags Loan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/loan [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CenterNo <= 0 {
		return response.BadRequest(c, "Center number is required")
	}
	if strings.TrimSpace(req.MemberCode) == "" {
		return response.BadRequest(c, "Member code is required")
	}
	if req.LoanAmount < 0 {
		return response.BadRequest(c, "Loan amount must not be negative")
	}

	loanDate, err := parseDate(req.LoanDate)
	if err != nil {
		return response.BadRequest(c, "Invalid loan date")
	}
	maturityDate, err := parseDate(req.MaturityDate)
	if err != nil {
		return response.BadRequest(c, "Invalid maturity date")
	}

	input := &services.CreateLoanInput{
		CenterNo:     req.CenterNo,
		MemberCode:   strings.TrimSpace(req.MemberCode),
		LoanSetup:    strings.TrimSpace(req.LoanSetup),
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		LoanDate:     loanDate,
		Month:        req.Month,
		Week:         req.Week,
		MaturityDate: maturityDate,
		NicNo:        strings.TrimSpace(req.NicNo),
	}

	loan, err := h.ledgerService.CreateLoan(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCenterNotFound):
			return response.BadRequest(c, "Center does not exist")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.BadRequest(c, "Member does not exist")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Loan amount must not be negative")
		default:
			return response.InternalServerError(c, "Failed to create loan")
		}
	}

	return response.Created(c, "Loan saved successfully", fiber.Map{
		"loanId": loan.LoanID,
	})
}

// Overview handles the center → members view (admin only)
// @Summary List every center with its enrolled members
// @Tags Loan
// @Produce json
// @Security BearerAuth
// @Router /api/loan [get]
func (h *LoanHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.overviewService.LoanOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build loan overview")
	}

	return response.Success(c, "", overview)
}
