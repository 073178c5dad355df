package portfolio

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/onehealth/portal/internal/models"
)

// Chart geometry, in viewBox units.
const (
	ChartWidth  = 320
	ChartHeight = 120

	originX   = 20
	spacingX  = 70
	baselineY = 110

	// Prices map into the band [bandLow, bandLow+bandSpan] measured from the
	// bottom, so the highest price sits at y=10 and the lowest at y=90.
	bandLow  = 10
	bandSpan = 80
)

// Point is one buy price placed on the chart.
type Point struct {
	Index int
	X     float64
	Y     float64
	Label decimal.Decimal
}

// LabelY is where the price label sits, just above the marker.
func (p Point) LabelY() float64 { return p.Y - 10 }

// Project sorts a copy of entries by purchase date and time (oldest first) and
// maps each buy price linearly onto the chart. When all prices are equal the
// range falls back to 1.
func Project(entries []models.GoldEntry) []Point {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]models.GoldEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return at(sorted[i].Date, sorted[i].Time).Before(at(sorted[j].Date, sorted[j].Time))
	})

	lo, hi := sorted[0].BuyPrice, sorted[0].BuyPrice
	for _, e := range sorted[1:] {
		lo = decimal.Min(lo, e.BuyPrice)
		hi = decimal.Max(hi, e.BuyPrice)
	}
	span := hi.Sub(lo)
	if span.IsZero() {
		span = decimal.NewFromInt(1)
	}

	points := make([]Point, len(sorted))
	for i, e := range sorted {
		ratio := e.BuyPrice.Sub(lo).Div(span).InexactFloat64()
		points[i] = Point{
			Index: i,
			X:     float64(originX + i*spacingX),
			Y:     100 - ratio*bandSpan - bandLow,
			Label: e.BuyPrice,
		}
	}
	return points
}

// Chart is the SVG-ready trend of buy prices.
type Chart struct {
	Width, Height int
	Points        []Point
	Line          string // path data of the trend line, "" below two points
	Area          string // path data of the filled area under the line
}

// HasLine reports whether the line and area render. Fewer than two points
// show markers only.
func (c Chart) HasLine() bool { return len(c.Points) > 1 }

// BuildChart projects entries and renders the path data.
func BuildChart(entries []models.GoldEntry) Chart {
	c := Chart{Width: ChartWidth, Height: ChartHeight, Points: Project(entries)}
	if !c.HasLine() {
		return c
	}

	coords := make([]string, len(c.Points))
	for i, p := range c.Points {
		coords[i] = Num(p.X) + " " + Num(p.Y)
	}
	joined := strings.Join(coords, " L ")
	last := c.Points[len(c.Points)-1]

	c.Line = "M " + joined
	c.Area = "M " + Num(originX) + " " + Num(baselineY) + " L " + joined +
		" L " + Num(last.X) + " " + Num(baselineY) + " Z"
	return c
}

// Num prints an SVG coordinate without trailing zeros.
func Num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
