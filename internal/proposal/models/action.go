package models

import (
	"strings"

	dErrors "treasury/pkg/domain-errors"
)

// Action is the treasury operation a proposal asks the lending facility to perform.
// The set is closed: every consumer switches through Dispatch, never on the raw value.
type Action uint8

const (
	ActionDeposit Action = iota + 1
	ActionWithdraw
	ActionBorrow
	ActionRepay
)

var actionNames = map[Action]string{
	ActionDeposit:  "deposit",
	ActionWithdraw: "withdraw",
	ActionBorrow:   "borrow",
	ActionRepay:    "repay",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{ActionDeposit, ActionWithdraw, ActionBorrow, ActionRepay}
}

// ActionHandler has one method per action. Adding an action adds a method here,
// so every handler stops compiling until it covers the new case.
type ActionHandler interface {
	OnDeposit() error
	OnWithdraw() error
	OnBorrow() error
	OnRepay() error
}

// Dispatch invokes the handler method matching a.
func (a Action) Dispatch(h ActionHandler) error {
	switch a {
	case ActionDeposit:
		return h.OnDeposit()
	case ActionWithdraw:
		return h.OnWithdraw()
	case ActionBorrow:
		return h.OnBorrow()
	case ActionRepay:
		return h.OnRepay()
	default:
		return dErrors.New(dErrors.CodeInvariantViolation, "unknown action")
	}
}

func (a Action) IsValid() bool {
	_, ok := actionNames[a]
	return ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction accepts the lowercase action name, ignoring case and surrounding space.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeValidation, "action must be one of deposit, withdraw, borrow, repay")
}

func (a Action) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown action")
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
