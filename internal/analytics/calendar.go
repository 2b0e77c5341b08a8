package analytics

import (
	"time"

	"alcyxob/fitstack/internal/domain"
)

// DayCell is one day-of-month cell in a month grid.
type DayCell struct {
	Day      int  `json:"day"`
	Recorded bool `json:"recorded"`
}

// Grid lays a month out for a Sunday-first calendar. Offset is the weekday
// column of day 1 (Sunday = 0); a grid has Rows * 7 positions of which the
// first Offset and everything past the last day are blank.
type Grid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Offset        int       `json:"offset"`
	DaysInMonth   int       `json:"daysInMonth"`
	Rows          int       `json:"rows"`
	Cells         []DayCell `json:"cells"`
	RecordedCount int       `json:"recordedCount"`
}

// MonthGrid projects a set of recorded dates (yyyy.MM.dd strings) onto the
// calendar grid of one month. Pure function of its inputs: recordedDates
// entries outside the month are ignored, and RecordedCount counts only the
// cells flagged recorded.
func MonthGrid(year int, month time.Month, recordedDates map[string]struct{}) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // Sunday = 0
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, daysInMonth)
	recorded := 0
	for day := 1; day <= daysInMonth; day++ {
		date := FormatDate(first.AddDate(0, 0, day-1))
		_, has := recordedDates[date]
		if has {
			recorded++
		}
		cells[day-1] = DayCell{Day: day, Recorded: has}
	}

	return Grid{
		Year:          year,
		Month:         int(month),
		Offset:        offset,
		DaysInMonth:   daysInMonth,
		Rows:          (offset + daysInMonth + 6) / 7,
		Cells:         cells,
		RecordedCount: recorded,
	}
}

// RecordedDateSet collects the distinct record dates of a user's records,
// ready for MonthGrid.
func RecordedDateSet(records []domain.WorkoutRecord) map[string]struct{} {
	dates := make(map[string]struct{}, len(records))
	for _, rec := range records {
		dates[rec.Date] = struct{}{}
	}
	return dates
}
