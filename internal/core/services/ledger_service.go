package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
)

// LedgerService handles center, member, loan and payment operations
type LedgerService struct {
	centers repositories.CenterRepository
	members repositories.MemberRepository
	loans   repositories.LoanRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	centers repositories.CenterRepository,
	members repositories.MemberRepository,
	loans repositories.LoanRepository,
) *LedgerService {
	return &LedgerService{
		centers: centers,
		members: members,
		loans:   loans,
	}
}

// CreateMemberInput represents member creation input
type CreateMemberInput struct {
	CenterNo     int64
	MemberCode   string
	MemberName   string
	MobileNumber string
	Address      string
}

// CreateLoanInput represents loan creation input
type CreateLoanInput struct {
	CenterNo     int64
	MemberCode   string
	LoanSetup    string
	LoanAmount   float64
	InterestRate float64
	LoanDate     time.Time
	Month        int
	Week         int
	MaturityDate time.Time
	NicNo        string
}

// CreateCenter registers a new center
func (s *LedgerService) CreateCenter(ctx context.Context, centerNo int64, centerName string) (*models.Center, error) {
	exists, err := s.centers.ExistsByCenterNo(ctx, centerNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCenterExists
	}

	center := &models.Center{
		CenterNo:   centerNo,
		CenterName: centerName,
	}

	if err := s.centers.Create(ctx, center); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCenterExists
		}
		return nil, err
	}

	log.Printf("✅ Center created: %d (%s)", center.CenterNo, center.CenterName)
	return center, nil
}

// ListCenters lists all centers projected to centerNo and centerName
func (s *LedgerService) ListCenters(ctx context.Context) ([]*models.CenterResponse, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.CenterResponse, 0, len(centers))
	for _, c := range centers {
		out = append(out, c.ToResponse())
	}
	return out, nil
}

// CreateMember enrolls a member under an existing center. The referenced
// center must exist at creation time.
func (s *LedgerService) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	exists, err := s.centers.ExistsByCenterNo(ctx, input.CenterNo)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCenterNotFound
	}

	taken, err := s.members.ExistsByMemberCode(ctx, input.MemberCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrMemberExists
	}

	member := &models.Member{
		CenterNo:     input.CenterNo,
		MemberCode:   input.MemberCode,
		MemberName:   input.MemberName,
		MobileNumber: input.MobileNumber,
		Address:      input.Address,
	}

	if err := s.members.Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrMemberExists
		}
		return nil, err
	}

	log.Printf("✅ Member created: %s under center %d", member.MemberCode, member.CenterNo)
	return member, nil
}

// ListMembers lists members with pagination
func (s *LedgerService) ListMembers(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	return s.members.List(ctx, offset, limit)
}

// CreateLoan originates a loan against an existing member. Both the center
// and the member must resolve at creation time, and the amount must not be
// negative. The loan identifier is a freshly generated random UUID.
func (s *LedgerService) CreateLoan(ctx context.Context, input *CreateLoanInput) (*models.Loan, error) {
	if input.LoanAmount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	centerExists, err := s.centers.ExistsByCenterNo(ctx, input.CenterNo)
	if err != nil {
		return nil, err
	}
	if !centerExists {
		return nil, domain.ErrCenterNotFound
	}

	memberExists, err := s.members.ExistsByMemberCode(ctx, input.MemberCode)
	if err != nil {
		return nil, err
	}
	if !memberExists {
		return nil, domain.ErrMemberNotFound
	}

	loan := &models.Loan{
		LoanID:       uuid.NewString(),
		CenterNo:     input.CenterNo,
		MemberCode:   input.MemberCode,
		LoanSetup:    input.LoanSetup,
		LoanAmount:   input.LoanAmount,
		InterestRate: input.InterestRate,
		LoanDate:     input.LoanDate,
		Month:        input.Month,
		Week:         input.Week,
		MaturityDate: input.MaturityDate,
		NicNo:        input.NicNo,
	}

	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ Loan created: %s for member %s", loan.LoanID, loan.MemberCode)
	return loan, nil
}

// AppendPayment records one payment against a loan and returns the loan
// with its updated payment history. This is the only mutation on an
// existing loan.
func (s *LedgerService) AppendPayment(ctx context.Context, loanID string, date time.Time, amount float64) (*models.Loan, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.loans.GetByLoanID(ctx, loanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}

	payment := &models.Payment{
		LoanID: loanID,
		Date:   date,
		Amount: amount,
	}

	if err := s.loans.AppendPayment(ctx, payment); err != nil {
		return nil, err
	}

	loan, err := s.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Payment recorded: %.2f against loan %s", amount, loanID)
	return loan, nil
}
