// Package registration implements the three-step sign-up wizard: a landing
// step, an account step validated on the way out, and a role-specific details
// step that hands the result to a Submitter.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Step int

const (
	Landing Step = iota + 1
	AccountInfo
	RoleDetails
)

// Steps lists the wizard steps in order, for progress indicators.
var Steps = []Step{Landing, AccountInfo, RoleDetails}

func (s Step) String() string {
	switch s {
	case Landing:
		return "landing"
	case AccountInfo:
		return "account_info"
	case RoleDetails:
		return "role_details"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three wizard steps.
func (s Step) Valid() bool { return s >= Landing && s <= RoleDetails }

type Role string

const (
	RoleNone Role = ""
	Patient  Role = "patient"
	Hospital Role = "hospital"
)

// ParseRole maps a submitted value to a Role. Unknown values count as no
// selection.
func ParseRole(s string) Role {
	switch Role(strings.TrimSpace(strings.ToLower(s))) {
	case Patient:
		return Patient
	case Hospital:
		return Hospital
	default:
		return RoleNone
	}
}

// Draft is the in-progress form data, field name -> value.
type Draft map[string]string

// Errors maps a field name to the message shown under it.
type Errors map[string]string

// FormError is the Errors key for messages not tied to one field.
const FormError = "_form"

var (
	ErrNotReady       = errors.New("registration: wizard is not on the details step")
	ErrInvalidDetails = errors.New("registration: details are incomplete")
)

// Wizard is the state of one registration in progress.
type Wizard struct {
	Step   Step
	Role   Role
	Draft  Draft
	Errors Errors
}

func New() *Wizard {
	return &Wizard{Step: Landing, Draft: Draft{}, Errors: Errors{}}
}

// Set records a field value and clears any error shown for it.
func (w *Wizard) Set(name, value string) {
	w.Draft[name] = value
	delete(w.Errors, name)
}

func (w *Wizard) SetRole(r Role) {
	w.Role = r
	delete(w.Errors, "role")
}

// Next moves one step forward. Leaving AccountInfo requires Validate to pass;
// on failure the errors are recorded and the step is unchanged.
func (w *Wizard) Next() bool {
	switch w.Step {
	case Landing:
		w.Step = AccountInfo
	case AccountInfo:
		if errs := Validate(w.Draft, w.Role); len(errs) > 0 {
			w.Errors = errs
			return false
		}
		w.Step = RoleDetails
	default:
		return false
	}
	w.Errors = Errors{}
	return true
}

// Back returns from RoleDetails to AccountInfo. Entered data is kept.
func (w *Wizard) Back() bool {
	if w.Step != RoleDetails {
		return false
	}
	w.Step = AccountInfo
	w.Errors = Errors{}
	return true
}

// Submit checks the role details and hands the registration to s. The
// password reaches s only as a bcrypt hash of the given cost.
func (w *Wizard) Submit(ctx context.Context, s Submitter, cost int) error {
	if w.Step != RoleDetails {
		return ErrNotReady
	}
	if errs := ValidateDetails(w.Draft, w.Role); len(errs) > 0 {
		w.Errors = errs
		return ErrInvalidDetails
	}

	reg, err := w.registration(cost)
	if err != nil {
		w.Errors = Errors{FormError: "We could not create your account. Please try again."}
		return err
	}
	if err := s.Submit(ctx, reg); err != nil {
		w.Errors = Errors{FormError: "We could not create your account. Please try again."}
		return fmt.Errorf("registration: submit: %w", err)
	}
	w.Errors = Errors{}
	return nil
}

// StepNumber is the 1-based position of the current step.
func (w *Wizard) StepNumber() int { return int(w.Step) }

// Value returns the draft value for name, "" when unset.
func (w *Wizard) Value(name string) string { return w.Draft[name] }
