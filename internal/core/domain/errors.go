package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidPIN         = errors.New("invalid secret pin")
	ErrEmailTaken         = errors.New("user with the given email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Ledger errors
var (
	ErrCenterExists   = errors.New("center already exists")
	ErrCenterNotFound = errors.New("center does not exist")
	ErrMemberExists   = errors.New("member code already exists")
	ErrMemberNotFound = errors.New("member does not exist")
	ErrLoanNotFound   = errors.New("loan not found")
	ErrInvalidAmount  = errors.New("amount must not be negative")
)
