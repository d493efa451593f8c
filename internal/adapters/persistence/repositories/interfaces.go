package repositories

import (
	"context"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
)

// UserRepository defines the credential store interface
type UserRepository interface {
	// Create persists a new user. The unique index on email makes
	// duplicate creation fail atomically with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CenterRepository defines center storage
type CenterRepository interface {
	Create(ctx context.Context, center *models.Center) error
	List(ctx context.Context) ([]*models.Center, error)
	ExistsByCenterNo(ctx context.Context, centerNo int64) (bool, error)
}

// MemberRepository defines member storage
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	ListByCenterNo(ctx context.Context, centerNo int64) ([]*models.Member, error)
	ExistsByMemberCode(ctx context.Context, memberCode string) (bool, error)
}

// LoanRepository defines loan and payment storage
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	// GetByLoanID returns the loan with its payment history preloaded
	// in recording order.
	GetByLoanID(ctx context.Context, loanID string) (*models.Loan, error)
	ListByMemberCode(ctx context.Context, memberCode string) ([]*models.Loan, error)
	// AppendPayment inserts one payment row for the given loan. The
	// insert is a single atomic statement scoped to that loan, so
	// concurrent appends cannot overwrite each other.
	AppendPayment(ctx context.Context, payment *models.Payment) error
}
