package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one browser session. Everything below is owned by a session and
// removed with it.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time

	LastSeenAt time.Time `gorm:"index"`
}

// RegistrationDraft holds the wizard state of a session until it is
// submitted or abandoned.
type RegistrationDraft struct {
	SessionID string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Step   int
	Role   string            // patient | hospital | ""
	Fields map[string]string `gorm:"serializer:json;type:text"`
}

// GoldEntry is one recorded gold purchase with its expected sell price.
// IDs grow with creation order; listing newest-first is "id desc".
type GoldEntry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	SessionID string `gorm:"index;not null;size:36"`

	Date       string          // 2006-01-02
	Time       string          // 15:04
	BuyPrice   decimal.Decimal `gorm:"type:text;not null"` // per gram
	GoldAmount decimal.Decimal `gorm:"type:text;not null"` // grams
	SellPrice  decimal.Decimal `gorm:"type:text;not null"` // per gram
	Notes      string
}
