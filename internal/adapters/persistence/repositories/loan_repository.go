package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByLoanID gets a loan by its loan identifier with payments preloaded
// in recording order
func (r *loanRepository) GetByLoanID(ctx context.Context, loanID string) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.id")
		}).
		Where("loan_id = ?", loanID).
		First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByMemberCode lists loans issued against a member
func (r *loanRepository) ListByMemberCode(ctx context.Context, memberCode string) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).Where("member_code = ?", memberCode).Order("id").Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// AppendPayment inserts one payment row for a loan. A single INSERT keeps
// concurrent appends against the same loan from losing entries; the loan
// record itself is never rewritten.
func (r *loanRepository) AppendPayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
