package portfolio

import "time"

// Layouts of the date and time inputs.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// at is the combined purchase moment of an entry. Unparseable values sort
// first as the zero time.
func at(date, clock string) time.Time {
	t, err := time.Parse(DateLayout+"T"+TimeLayout, date+"T"+clock)
	if err != nil {
		return time.Time{}
	}
	return t
}
