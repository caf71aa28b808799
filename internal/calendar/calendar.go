package calendar

import (
	"fmt"
	"time"
)

// Empty marks a placeholder cell in a month grid: a position before the
// first day of the month or after the last one.
const Empty = 0

// MonthGrid lays the days of a month out as week rows of exactly seven
// cells, Sunday first. Cells hold the day number, or Empty where the
// row extends past the month's edges, so day 1 sits under its weekday
// column and the last row is padded to full length.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 0, 7)

	for i := 0; i < firstWeekday; i++ {
		week = append(week, Empty)
	}

	for day := 1; day <= daysInMonth; day++ {
		week = append(week, day)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]int, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Empty)
		}
		weeks = append(weeks, week)
	}

	return weeks
}

// FirstWeekday returns the weekday column (Sunday = 0) of day 1.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsPast reports whether the given day falls strictly before today,
// comparing dates only.
func IsPast(year int, month time.Month, day int, today time.Time) bool {
	y, m, d := today.Date()
	if year != y {
		return year < y
	}
	if month != m {
		return month < m
	}
	return day < d
}

// IsToday reports whether the given day is today's calendar date.
func IsToday(year int, month time.Month, day int, today time.Time) bool {
	y, m, d := today.Date()
	return year == y && month == m && day == d
}

// FormatDay renders a selected day as a canonical "YYYY-MM-DD" string.
func FormatDay(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// SelectDay validates a tapped day and returns its canonical date
// string. Placeholder cells and past days are not selectable.
func SelectDay(year int, month time.Month, day int, today time.Time) (string, error) {
	if day == Empty {
		return "", fmt.Errorf("calendar: empty cell is not selectable")
	}
	daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	if day < 1 || day > daysInMonth {
		return "", fmt.Errorf("calendar: day %d out of range for %04d-%02d", day, year, int(month))
	}
	if IsPast(year, month, day, today) {
		return "", fmt.Errorf("calendar: %s is in the past", FormatDay(year, month, day))
	}
	return FormatDay(year, month, day), nil
}
