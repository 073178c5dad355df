package registration

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/onehealth/portal/internal/logger"
)

// Registration is what a completed wizard produces.
type Registration struct {
	Role         Role
	FirstName    string
	LastName     string
	Email        string
	Mobile       string
	PasswordHash []byte
	Details      map[string]string // role-specific inputs by field name
}

// Submitter receives completed registrations. No backend is connected yet;
// UnwiredSubmitter stands in until one is.
type Submitter interface {
	Submit(ctx context.Context, reg Registration) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, reg Registration) error

func (f SubmitterFunc) Submit(ctx context.Context, reg Registration) error { return f(ctx, reg) }

// UnwiredSubmitter accepts every registration and only logs it.
type UnwiredSubmitter struct{}

func (UnwiredSubmitter) Submit(_ context.Context, reg Registration) error {
	logger.L().Warn("registration submission is not wired to a backend; discarding",
		zap.String("role", string(reg.Role)),
		zap.Int("detail_fields", len(reg.Details)),
	)
	return nil
}

func (w *Wizard) registration(cost int) (Registration, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(w.Draft["password"]), cost)
	if err != nil {
		return Registration{}, fmt.Errorf("registration: hash password: %w", err)
	}

	details := make(map[string]string)
	for _, f := range DetailFields(w.Role) {
		if v := w.Draft[f.Name]; v != "" {
			details[f.Name] = v
		}
	}

	return Registration{
		Role:         w.Role,
		FirstName:    w.Draft["firstName"],
		LastName:     w.Draft["lastName"],
		Email:        w.Draft["email"],
		Mobile:       w.Draft["mobile"],
		PasswordHash: hash,
		Details:      details,
	}, nil
}
