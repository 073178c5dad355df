package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/onehealth/portal/internal/models"
)

// DemoEntries are the sample purchases a new dashboard starts with, in
// display order (first is shown first).
func DemoEntries() []models.GoldEntry {
	return []models.GoldEntry{
		{
			Date:       "2024-10-07",
			Time:       "10:30",
			BuyPrice:   decimal.NewFromInt(6200),
			GoldAmount: decimal.NewFromInt(10),
			SellPrice:  decimal.NewFromInt(6350),
			Notes:      "Diwali saving",
		},
		{
			Date:       "2024-10-18",
			Time:       "14:15",
			BuyPrice:   decimal.NewFromInt(6280),
			GoldAmount: decimal.NewFromInt(5),
			SellPrice:  decimal.NewFromInt(6400),
			Notes:      "Extra investment",
		},
	}
}
