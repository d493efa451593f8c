package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/pagination"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	ledgerService *services.LedgerService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(ledgerService *services.LedgerService) *MemberHandler {
	return &MemberHandler{ledgerService: ledgerService}
}

// CreateMemberRequest represents the member enrollment request body
type CreateMemberRequest struct {
	CenterNo      int64  `json:"centerNo"`
	MemberCode    string `json:"memberCode"`
	MemberName    string `json:"memberName"`
	MemberMobile  string `json:"memberMobile"`
	MemberAddress string `json:"memberAddress"`
}

// Create handles member enrollment (admin only)
// @Summary Enroll a member under an existing center
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/member [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CenterNo <= 0 {
		return response.BadRequest(c, "Center number is required")
	}
	if strings.TrimSpace(req.MemberCode) == "" {
		return response.BadRequest(c, "Member code is required")
	}
	if strings.TrimSpace(req.MemberName) == "" {
		return response.BadRequest(c, "Member name is required")
	}
	if strings.TrimSpace(req.MemberMobile) == "" {
		return response.BadRequest(c, "Member mobile number is required")
	}
	if strings.TrimSpace(req.MemberAddress) == "" {
		return response.BadRequest(c, "Member address is required")
	}

	input := &services.CreateMemberInput{
		CenterNo:     req.CenterNo,
		MemberCode:   strings.TrimSpace(req.MemberCode),
		MemberName:   strings.TrimSpace(req.MemberName),
		MobileNumber: strings.TrimSpace(req.MemberMobile),
		Address:      strings.TrimSpace(req.MemberAddress),
	}

	member, err := h.ledgerService.CreateMember(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCenterNotFound):
			return response.BadRequest(c, "Center does not exist")
		case errors.Is(err, domain.ErrMemberExists):
			return response.Conflict(c, "Member code already exists")
		default:
			return response.InternalServerError(c, "Failed to create member")
		}
	}

	return response.Created(c, "Member saved successfully", member)
}

// List handles paginated member listing (admin only)
// @Summary List members
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Router /api/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	members, total, err := h.ledgerService.ListMembers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "", pagination.NewResponse(members, params, total))
}
