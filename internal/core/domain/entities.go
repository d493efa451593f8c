package domain

import "time"

// Role represents a user role in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is an identity in the credential store. Role is assigned once at
// signup via shared-secret PIN matching and never changed afterwards.
type User struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Password  string // hashed
	Role      Role
	CreatedAt time.Time
}

// Center is a geographic/administrative grouping under which members are
// enrolled. Never mutated after creation.
type Center struct {
	CenterNo   int64
	CenterName string
}

// Member is an individual borrower enrolled under a Center.
type Member struct {
	CenterNo     int64
	MemberCode   string
	MemberName   string
	MobileNumber string
	Address      string
}

// Loan is a credit extended to a Member. Payments is an append-only
// sequence in recording order.
type Loan struct {
	LoanID       string
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
	Payments     []Payment
}

// Payment is one recorded repayment event against a Loan. Entries are
// never edited or removed.
type Payment struct {
	Date   time.Time
	Amount float64
}
