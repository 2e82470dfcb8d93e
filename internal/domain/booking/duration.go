package booking

import (
	"time"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

type Duration string

const (
	DurationWeekly  Duration = "weekly"
	DurationMonthly Duration = "monthly"
)

func IsDuration(v string) bool {
	return v == string(DurationWeekly) || v == string(DurationMonthly)
}

// ReturnDate is the day a carrier rented from start is due back. A monthly
// rental ends on the same day next month, or on that month's last day when it
// is shorter (Jan 31 -> Feb 29 in a leap year).
func ReturnDate(start models.Date, d Duration) models.Date {
	if d == DurationMonthly {
		return addMonthClamped(start)
	}
	return start.AddDays(7)
}

func addMonthClamped(d models.Date) models.Date {
	year, month := d.Year, d.Month+1
	if month > time.December {
		year, month = year+1, time.January
	}
	day := d.Day
	if last := daysIn(year, month); day > last {
		day = last
	}
	return models.NewDate(year, month, day)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
