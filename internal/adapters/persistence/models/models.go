package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
)

// User represents the users table (credential store)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// ToDomain converts the persistence record to a domain user
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// Center represents the centers table. Rows are immutable after creation.
type Center struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CenterNo   int64     `gorm:"uniqueIndex;not null" json:"centerNo"`
	CenterName string    `gorm:"size:100;not null" json:"centerName"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Center) TableName() string {
	return "centers"
}

// CenterResponse is the center projection returned by list endpoints.
// Internal identifiers are excluded.
type CenterResponse struct {
	CenterNo   int64  `json:"centerNo"`
	CenterName string `json:"centerName"`
}

func (c *Center) ToResponse() *CenterResponse {
	return &CenterResponse{
		CenterNo:   c.CenterNo,
		CenterName: c.CenterName,
	}
}

// Member represents the members table. CenterNo must reference an existing
// center at creation time; the check happens in the ledger service.
type Member struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	CenterNo     int64     `gorm:"index;not null" json:"centerNo"`
	MemberCode   string    `gorm:"uniqueIndex;size:50;not null" json:"memberCode"`
	MemberName   string    `gorm:"size:100;not null" json:"memberName"`
	MobileNumber string    `gorm:"size:20;not null" json:"memberMobile"`
	Address      string    `gorm:"size:255;not null" json:"memberAddress"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// MemberSummary is the code+name projection used in overviews
type MemberSummary struct {
	MemberCode string `json:"memberCode"`
	MemberName string `json:"memberName"`
}

func (m *Member) ToSummary() *MemberSummary {
	return &MemberSummary{
		MemberCode: m.MemberCode,
		MemberName: m.MemberName,
	}
}

// Loan represents the loans table. LoanID is a random 128-bit identifier
// generated at creation and immutable afterwards.
type Loan struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	LoanID       string    `gorm:"uniqueIndex;size:36;not null" json:"loanId"`
	CenterNo     int64     `gorm:"index;not null" json:"centerNo"`
	MemberCode   string    `gorm:"index;size:50;not null" json:"memberCode"`
	LoanSetup    string    `gorm:"size:50;not null" json:"loanSetup"`
	LoanAmount   float64   `gorm:"type:decimal(15,2);not null" json:"loanAmount"`
	InterestRate float64   `gorm:"type:decimal(5,2);not null" json:"interestRate"`
	LoanDate     time.Time `gorm:"type:date;not null" json:"loanDate"`
	Month        int       `gorm:"not null" json:"month"`
	Week         int       `gorm:"not null" json:"week"`
	MaturityDate time.Time `gorm:"type:date;not null" json:"maturityDate"`
	NicNo        string    `gorm:"size:20;not null" json:"nicNo"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`

	// Append-only payment history, ordered by insertion
	Payments []Payment `gorm:"foreignKey:LoanID;references:LoanID" json:"payments"`
}

func (Loan) TableName() string {
	return "loans"
}

// Payment represents one row of the payments table. A payment row is
// inserted once and never updated or deleted; the auto-increment primary
// key preserves recording order.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	LoanID    string    `gorm:"index;size:36;not null" json:"-"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Center{},
		&Member{},
		&Loan{},
		&Payment{},
	)
}
