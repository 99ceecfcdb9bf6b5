package domain

import (
	"encoding/hex"
	"strings"

	dErrors "treasury/pkg/domain-errors"
)

const (
	addressHexLen    = 40
	maxProposalIDLen = 64
)

// Address identifies an account, token, organization, or contract. It is always
// stored as a lowercase 0x-prefixed 20-byte hex string.
type Address string

// ZeroAddress is never a valid recipient.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// OrganizationID identifies the organization that owns a proposal.
type OrganizationID Address

// ProposalID is unique per organization, not globally.
type ProposalID string

func (a Address) String() string { return string(a) }

func (a Address) IsZero() bool { return a == "" || a == ZeroAddress }

func (o OrganizationID) String() string { return string(o) }

func (o OrganizationID) Address() Address { return Address(o) }

func (p ProposalID) String() string { return string(p) }

// ParseAddress validates and normalizes an account address.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address is required")
	}
	rest, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || len(rest) != addressHexLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must be 0x followed by 40 hex characters")
	}
	if _, err := hex.DecodeString(rest); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must be hex encoded")
	}
	return Address("0x" + rest), nil
}

// MustAddress is ParseAddress for constants and tests.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseOrganizationID validates an organization address.
func ParseOrganizationID(s string) (OrganizationID, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return "", err
	}
	if a.IsZero() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "organization cannot be the zero address")
	}
	return OrganizationID(a), nil
}

// ParseProposalID accepts 1-64 characters of [A-Za-z0-9._:-].
func ParseProposalID(s string) (ProposalID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "proposal id is required")
	}
	if len(s) > maxProposalIDLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "proposal id must be at most 64 characters")
	}
	for i := 0; i < len(s); i++ {
		if !isProposalIDChar(s[i]) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "proposal id contains invalid characters")
		}
	}
	return ProposalID(s), nil
}

func isProposalIDChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == ':':
		return true
	}
	return false
}
