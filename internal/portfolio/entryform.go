package portfolio

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onehealth/portal/internal/models"
)

// Errors maps an entry form field to the message shown under it.
type Errors map[string]string

const (
	msgRequired = "This field is required"
	msgDate     = "Enter a valid date"
	msgTime     = "Enter a valid time"
	msgNumber   = "Enter a number"
	msgNegative = "Must be zero or more"
)

// Bounds on a posted amount. Anything wider is not a price or a weight and
// would make formatting arbitrarily slow.
const (
	maxExponent = 18
	maxDigits   = 18
)

// EntryFormFields lists the inputs of the entry form in display order.
var EntryFormFields = []string{"date", "time", "buyPrice", "goldAmount", "sellPrice", "notes"}

// ParseEntry reads the entry form. The returned entry has no ID or session;
// it is only meaningful when errs is empty.
func ParseEntry(form url.Values) (models.GoldEntry, Errors) {
	errs := Errors{}
	e := models.GoldEntry{
		Date:  strings.TrimSpace(form.Get("date")),
		Time:  strings.TrimSpace(form.Get("time")),
		Notes: strings.TrimSpace(form.Get("notes")),
	}

	switch {
	case e.Date == "":
		errs["date"] = msgRequired
	case !parses(DateLayout, e.Date):
		errs["date"] = msgDate
	}
	switch {
	case e.Time == "":
		errs["time"] = msgRequired
	case !parses(TimeLayout, e.Time):
		errs["time"] = msgTime
	}

	e.BuyPrice = amount(form, "buyPrice", errs)
	e.GoldAmount = amount(form, "goldAmount", errs)
	e.SellPrice = amount(form, "sellPrice", errs)

	return e, errs
}

func parses(layout, v string) bool {
	_, err := time.Parse(layout, v)
	return err == nil
}

func amount(form url.Values, name string, errs Errors) decimal.Decimal {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		errs[name] = msgRequired
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || outOfRange(d) {
		errs[name] = msgNumber
		return decimal.Zero
	}
	if d.IsNegative() {
		errs[name] = msgNegative
		return decimal.Zero
	}
	return d
}

func outOfRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp > maxExponent || exp < -maxExponent || d.NumDigits() > maxDigits
}
