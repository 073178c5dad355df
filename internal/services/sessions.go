package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/onehealth/portal/internal/db"
	"github.com/onehealth/portal/internal/models"
	"github.com/onehealth/portal/internal/portfolio"
)

// EnsureSession touches session id, creating it when unknown. New sessions
// get the demo entries when seed is set. created reports whether the session
// was new.
func EnsureSession(ctx context.Context, id string, seed bool) (created bool, err error) {
	now := time.Now().UTC()
	err = db.Conn().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Session{}).Where("id = ?", id).Update("last_seen_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		if err := tx.Create(&models.Session{ID: id, LastSeenAt: now}).Error; err != nil {
			return err
		}
		created = true
		if seed {
			return seedEntries(tx, id)
		}
		return nil
	})
	return created, err
}

// seedEntries stores the demo entries so that they list in DemoEntries order:
// the last one is inserted first.
func seedEntries(tx *gorm.DB, sessionID string) error {
	demo := portfolio.DemoEntries()
	for i := len(demo) - 1; i >= 0; i-- {
		e := demo[i]
		e.SessionID = sessionID
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
	}
	return nil
}

// SweepIdle deletes sessions not seen since cutoff together with their drafts
// and entries. It returns the number of sessions removed.
func SweepIdle(ctx context.Context, cutoff time.Time) (int, error) {
	var swept int
	err := db.Conn().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Session{}).
			Where("last_seen_at < ?", cutoff.UTC()).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("session_id IN ?", ids).Delete(&models.GoldEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id IN ?", ids).Delete(&models.RegistrationDraft{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		swept = len(ids)
		return nil
	})
	return swept, err
}
