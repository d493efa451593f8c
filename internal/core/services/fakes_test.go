package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
)

// In-memory fakes satisfying the repository interfaces. They reproduce the
// storage-layer contract the services rely on: gorm.ErrRecordNotFound for
// misses and gorm.ErrDuplicatedKey for unique-index violations.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeCenterRepo struct {
	mu      sync.Mutex
	centers []*models.Center
	listErr error
}

var _ repositories.CenterRepository = (*fakeCenterRepo)(nil)

func newFakeCenterRepo() *fakeCenterRepo {
	return &fakeCenterRepo{}
}

func (f *fakeCenterRepo) Create(_ context.Context, center *models.Center) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.centers {
		if c.CenterNo == center.CenterNo {
			return gorm.ErrDuplicatedKey
		}
	}
	stored := *center
	f.centers = append(f.centers, &stored)
	return nil
}

func (f *fakeCenterRepo) List(_ context.Context) ([]*models.Center, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Center, len(f.centers))
	copy(out, f.centers)
	return out, nil
}

func (f *fakeCenterRepo) ExistsByCenterNo(_ context.Context, centerNo int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.centers {
		if c.CenterNo == centerNo {
			return true, nil
		}
	}
	return false, nil
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members []*models.Member
	listErr error
}

var _ repositories.MemberRepository = (*fakeMemberRepo)(nil)

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{}
}

func (f *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.MemberCode == member.MemberCode {
			return gorm.ErrDuplicatedKey
		}
	}
	stored := *member
	f.members = append(f.members, &stored)
	return nil
}

func (f *fakeMemberRepo) List(_ context.Context, offset, limit int) ([]*models.Member, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := int64(len(f.members))
	if offset >= len(f.members) {
		return []*models.Member{}, total, nil
	}
	end := offset + limit
	if end > len(f.members) {
		end = len(f.members)
	}
	out := make([]*models.Member, end-offset)
	copy(out, f.members[offset:end])
	return out, total, nil
}

func (f *fakeMemberRepo) ListByCenterNo(_ context.Context, centerNo int64) ([]*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Member
	for _, m := range f.members {
		if m.CenterNo == centerNo {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) ExistsByMemberCode(_ context.Context, memberCode string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.MemberCode == memberCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.members)
}

type fakeLoanRepo struct {
	mu       sync.Mutex
	order    []string
	loans    map[string]*models.Loan
	payments map[string][]models.Payment
	listErr  error
}

var _ repositories.LoanRepository = (*fakeLoanRepo)(nil)

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{
		loans:    make(map[string]*models.Loan),
		payments: make(map[string][]models.Payment),
	}
}

func (f *fakeLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.loans[loan.LoanID]; ok {
		return gorm.ErrDuplicatedKey
	}
	stored := *loan
	f.loans[loan.LoanID] = &stored
	f.order = append(f.order, loan.LoanID)
	return nil
}

func (f *fakeLoanRepo) GetByLoanID(_ context.Context, loanID string) (*models.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loans[loanID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *l
	out.Payments = append([]models.Payment(nil), f.payments[loanID]...)
	return &out, nil
}

func (f *fakeLoanRepo) ListByMemberCode(_ context.Context, memberCode string) ([]*models.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Loan
	for _, id := range f.order {
		if f.loans[id].MemberCode == memberCode {
			copied := *f.loans[id]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) AppendPayment(_ context.Context, payment *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[payment.LoanID] = append(f.payments[payment.LoanID], *payment)
	return nil
}
