// Package portfolio derives dashboard figures from a list of gold entries.
// Every function here is pure: results depend only on the entries passed in.
package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/onehealth/portal/internal/models"
)

// Summary is the set of figures shown on the dashboard cards.
type Summary struct {
	Count         int
	TotalInvested decimal.Decimal
	TotalGold     decimal.Decimal // grams
	PotentialSell decimal.Decimal
	ProfitLoss    decimal.Decimal

	AverageBuyPrice decimal.Decimal // valid only when HasAverage
	HasAverage      bool
	LatestBuyPrice  decimal.Decimal // buy price of entries[0], valid only when HasLatest
	HasLatest       bool
}

// Invested is buyPrice × goldAmount of one entry.
func Invested(e models.GoldEntry) decimal.Decimal {
	return e.BuyPrice.Mul(e.GoldAmount)
}

// TotalInvested is Σ buyPrice × goldAmount.
func TotalInvested(entries []models.GoldEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(Invested(e))
	}
	return total
}

// TotalGold is Σ goldAmount.
func TotalGold(entries []models.GoldEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.GoldAmount)
	}
	return total
}

// PotentialSell is Σ sellPrice × goldAmount.
func PotentialSell(entries []models.GoldEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.SellPrice.Mul(e.GoldAmount))
	}
	return total
}

// ProfitLoss is PotentialSell − TotalInvested.
func ProfitLoss(entries []models.GoldEntry) decimal.Decimal {
	return PotentialSell(entries).Sub(TotalInvested(entries))
}

// AverageBuyPrice is TotalInvested / TotalGold. ok is false when no gold is held.
func AverageBuyPrice(entries []models.GoldEntry) (avg decimal.Decimal, ok bool) {
	gold := TotalGold(entries)
	if gold.IsZero() {
		return decimal.Zero, false
	}
	return TotalInvested(entries).Div(gold), true
}

// Summarize computes every dashboard figure for entries (newest first).
func Summarize(entries []models.GoldEntry) Summary {
	s := Summary{
		Count:         len(entries),
		TotalInvested: TotalInvested(entries),
		TotalGold:     TotalGold(entries),
		PotentialSell: PotentialSell(entries),
	}
	s.ProfitLoss = s.PotentialSell.Sub(s.TotalInvested)
	s.AverageBuyPrice, s.HasAverage = AverageBuyPrice(entries)
	if len(entries) > 0 {
		s.LatestBuyPrice, s.HasLatest = entries[0].BuyPrice, true
	}
	return s
}

// Prepend returns a new slice with e first, followed by entries.
func Prepend(entries []models.GoldEntry, e models.GoldEntry) []models.GoldEntry {
	out := make([]models.GoldEntry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}
