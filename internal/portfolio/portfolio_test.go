package portfolio

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onehealth/portal/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(date, clock, buy, amount, sell string) models.GoldEntry {
	return models.GoldEntry{Date: date, Time: clock, BuyPrice: dec(buy), GoldAmount: dec(amount), SellPrice: dec(sell)}
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestSummarize_DemoEntries(t *testing.T) {
	s := Summarize(DemoEntries())

	assert.Equal(t, 2, s.Count)
	assertDec(t, "93400", s.TotalInvested) // 62000 + 31400
	assertDec(t, "15", s.TotalGold)
	assertDec(t, "95500", s.PotentialSell) // 63500 + 32000
	assertDec(t, "2100", s.ProfitLoss)
	require.True(t, s.HasAverage)
	assertDec(t, "93400", s.AverageBuyPrice.Mul(dec("15")).Round(6))
	require.True(t, s.HasLatest)
	assertDec(t, "6200", s.LatestBuyPrice)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.Count)
	assert.True(t, s.TotalInvested.IsZero())
	assert.True(t, s.ProfitLoss.IsZero())
	assert.False(t, s.HasAverage)
	assert.False(t, s.HasLatest)
}

func TestAverageBuyPrice_GuardsZeroGold(t *testing.T) {
	_, ok := AverageBuyPrice([]models.GoldEntry{entry("2024-01-01", "10:00", "6000", "0", "6100")})
	assert.False(t, ok)
}

func TestTotals_MatchDefinitions(t *testing.T) {
	entries := []models.GoldEntry{
		entry("2024-01-01", "10:00", "6100.5", "0.1", "6200"),
		entry("2024-01-02", "11:00", "6000", "2.5", "5900"),
		entry("2024-01-03", "12:00", "0", "3", "10"),
	}

	invested := decimal.Zero
	sell := decimal.Zero
	for _, e := range entries {
		invested = invested.Add(e.BuyPrice.Mul(e.GoldAmount))
		sell = sell.Add(e.SellPrice.Mul(e.GoldAmount))
	}

	assertDec(t, invested.String(), TotalInvested(entries))
	assertDec(t, sell.Sub(invested).String(), ProfitLoss(entries))
	assertDec(t, "15610.05", TotalInvested(entries))
	assertDec(t, "5.6", TotalGold(entries))
}

func TestPrepend_NewestFirstRegardlessOfDate(t *testing.T) {
	entries := DemoEntries()
	older := entry("2001-01-01", "00:00", "100", "1", "100")

	got := Prepend(entries, older)

	require.Len(t, got, 3)
	assert.Equal(t, "2001-01-01", got[0].Date)
	assert.Equal(t, "2024-10-07", got[1].Date)
	assert.Len(t, entries, 2, "input must not be modified")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹93,400", FormatMoney(dec("93400")))
	assert.Equal(t, "₹6,227", FormatMoney(dec("6226.6666")))
	assert.Equal(t, "-₹2,100", FormatMoney(dec("-2100")))
	assert.Equal(t, "₹0", FormatMoney(decimal.Zero))
	assert.Equal(t, "₹0", FormatMoney(dec("-0.4")))
	assert.Equal(t, "₹1,06,000", FormatMoney(dec("106000")))
	assert.Equal(t, "₹1,23,45,678", FormatMoney(dec("12345678")))
	assert.Equal(t, "-₹12,34,567", FormatMoney(dec("-1234567")))
}

func TestFormatGrams(t *testing.T) {
	assert.Equal(t, "15", FormatGrams(dec("15")))
	assert.Equal(t, "10.5", FormatGrams(dec("10.50")))
	assert.Equal(t, "0.33", FormatGrams(dec("0.333")))
}

func TestParseEntry_Valid(t *testing.T) {
	form := url.Values{
		"date":       {"2024-11-01"},
		"time":       {"09:05"},
		"buyPrice":   {"6300"},
		"goldAmount": {"2.5"},
		"sellPrice":  {"6450"},
		"notes":      {"  Dhanteras  "},
	}

	e, errs := ParseEntry(form)
	require.Empty(t, errs)
	assert.Equal(t, "2024-11-01", e.Date)
	assert.Equal(t, "09:05", e.Time)
	assertDec(t, "6300", e.BuyPrice)
	assertDec(t, "2.5", e.GoldAmount)
	assertDec(t, "6450", e.SellPrice)
	assert.Equal(t, "Dhanteras", e.Notes)
}

func TestParseEntry_NotesOptional(t *testing.T) {
	form := url.Values{
		"date": {"2024-11-01"}, "time": {"09:05"},
		"buyPrice": {"0"}, "goldAmount": {"0"}, "sellPrice": {"0"},
	}
	_, errs := ParseEntry(form)
	assert.Empty(t, errs)
}

func TestParseEntry_Errors(t *testing.T) {
	form := url.Values{
		"date":       {"01/11/2024"},
		"time":       {""},
		"buyPrice":   {"abc"},
		"goldAmount": {"-1"},
	}

	_, errs := ParseEntry(form)
	assert.Equal(t, Errors{
		"date":       msgDate,
		"time":       msgRequired,
		"buyPrice":   msgNumber,
		"goldAmount": msgNegative,
		"sellPrice":  msgRequired,
	}, errs)
}

func TestParseEntry_RejectsHugeExponent(t *testing.T) {
	for _, v := range []string{"1e-30000000", "1e30000000", "1e19", "1234567890123456789"} {
		form := url.Values{
			"date": {"2024-11-01"}, "time": {"09:05"},
			"buyPrice": {v}, "goldAmount": {"1"}, "sellPrice": {"1"},
		}
		_, errs := ParseEntry(form)
		assert.Equal(t, Errors{"buyPrice": msgNumber}, errs, v)
	}

	form := url.Values{
		"date": {"2024-11-01"}, "time": {"09:05"},
		"buyPrice": {"6.2e3"}, "goldAmount": {"0.125"}, "sellPrice": {"6350"},
	}
	e, errs := ParseEntry(form)
	require.Empty(t, errs)
	assert.Equal(t, "₹6,200", FormatMoney(e.BuyPrice))
}
