package models

import (
	"strings"

	dErrors "treasury/pkg/domain-errors"
)

// VoteResult is the outcome a voting adapter reports for a proposal.
type VoteResult uint8

const (
	VoteNotStarted VoteResult = iota
	VoteInProgress
	VoteGracePeriod
	VoteTie
	VotePass
	VoteFail
)

func (v VoteResult) String() string {
	switch v {
	case VoteNotStarted:
		return "not_started"
	case VoteInProgress:
		return "in_progress"
	case VoteGracePeriod:
		return "grace_period"
	case VoteTie:
		return "tie"
	case VotePass:
		return "pass"
	case VoteFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Passed reports whether funds may move.
func (v VoteResult) Passed() bool {
	return v == VotePass
}

// ParseVoteResult accepts the lowercase names returned by String.
func ParseVoteResult(s string) (VoteResult, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v := VoteNotStarted; v <= VoteFail; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeValidation, "result must be one of not_started, in_progress, grace_period, tie, pass, fail")
}
