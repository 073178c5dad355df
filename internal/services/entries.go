package services

import (
	"context"
	"errors"

	"github.com/onehealth/portal/internal/db"
	"github.com/onehealth/portal/internal/models"
)

var ErrNoSession = errors.New("entry has no session")

// ListEntries returns the session's entries newest-first by insertion.
func ListEntries(ctx context.Context, sessionID string) ([]models.GoldEntry, error) {
	var entries []models.GoldEntry
	err := db.Conn().WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		Find(&entries).Error
	return entries, err
}

// AddEntry stores e with a fresh ID. It becomes the first entry of its
// session's list whatever its date and time.
func AddEntry(ctx context.Context, e *models.GoldEntry) error {
	if e.SessionID == "" {
		return ErrNoSession
	}
	e.ID = 0
	return db.Conn().WithContext(ctx).Create(e).Error
}
