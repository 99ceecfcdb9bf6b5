package models

import "errors"

// Failure reasons surfaced to callers. Services return them wrapped in a coded
// domain error, so match with errors.Is.
var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrTokenNotAllowed        = errors.New("token not allowed")
	ErrReservedApplicant      = errors.New("reserved applicant")
	ErrAdapterNotFound        = errors.New("voting adapter not found")
	ErrVoteNotPassed          = errors.New("vote not passed")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrProposalNotFound       = errors.New("proposal not found")
	ErrAlreadyProcessed       = errors.New("proposal already processed")
	ErrReentrantCall          = errors.New("reentrant call")
	ErrDirectTransferRejected = errors.New("direct transfers are not accepted")
)
