package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/onehealth/portal/internal/db"
	"github.com/onehealth/portal/internal/models"
	"github.com/onehealth/portal/internal/registration"
)

// LoadWizard returns the session's wizard, or a fresh one on the landing step.
func LoadWizard(ctx context.Context, sessionID string) (*registration.Wizard, error) {
	var d models.RegistrationDraft
	err := db.Conn().WithContext(ctx).Where("session_id = ?", sessionID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return registration.New(), nil
	}
	if err != nil {
		return nil, err
	}

	w := registration.New()
	if step := registration.Step(d.Step); step.Valid() {
		w.Step = step
	}
	w.Role = registration.ParseRole(d.Role)
	for k, v := range d.Fields {
		w.Draft[k] = v
	}
	return w, nil
}

// SaveWizard stores step, role and draft. Errors are per-response and are
// not kept.
func SaveWizard(ctx context.Context, sessionID string, w *registration.Wizard) error {
	d := models.RegistrationDraft{
		SessionID: sessionID,
		Step:      int(w.Step),
		Role:      string(w.Role),
		Fields:    map[string]string(w.Draft),
	}
	return db.Conn().WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"step", "role", "fields", "updated_at"}),
	}).Create(&d).Error
}

// DiscardDraft forgets the session's registration in progress.
func DiscardDraft(ctx context.Context, sessionID string) error {
	return db.Conn().WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.RegistrationDraft{}).Error
}
