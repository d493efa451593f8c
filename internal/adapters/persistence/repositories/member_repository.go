package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// List lists members with pagination
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("member_code").Offset(offset).Limit(limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListByCenterNo lists members enrolled under a center
func (r *memberRepository) ListByCenterNo(ctx context.Context, centerNo int64) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Where("center_no = ?", centerNo).Order("member_code").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ExistsByMemberCode checks if a member code exists
func (r *memberRepository) ExistsByMemberCode(ctx context.Context, memberCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("member_code = ?", memberCode).Count(&count).Error
	return count > 0, err
}
