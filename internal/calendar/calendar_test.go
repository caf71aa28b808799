package calendar

import (
	"testing"
	"time"
)

func TestMonthGridShape(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2026, time.August, 31},
		{2025, time.December, 31},
	}

	for _, m := range months {
		grid := MonthGrid(m.year, m.month)

		total := 0
		for i, week := range grid {
			if len(week) != 7 {
				t.Fatalf("%04d-%02d week %d has %d cells, want 7", m.year, m.month, i, len(week))
			}
			for _, cell := range week {
				if cell != Empty {
					total++
				}
			}
		}
		if total != m.days {
			t.Errorf("%04d-%02d has %d day cells, want %d", m.year, m.month, total, m.days)
		}

		// Day 1 must sit under the weekday column of the month's first day.
		col := -1
		for i, cell := range grid[0] {
			if cell == 1 {
				col = i
				break
			}
		}
		if col != FirstWeekday(m.year, m.month) {
			t.Errorf("%04d-%02d day 1 in column %d, want %d", m.year, m.month, col, FirstWeekday(m.year, m.month))
		}
	}
}

func TestMonthGridOrdering(t *testing.T) {
	grid := MonthGrid(2025, time.June)

	want := 1
	for _, week := range grid {
		for _, cell := range week {
			if cell == Empty {
				continue
			}
			if cell != want {
				t.Fatalf("expected day %d, got %d", want, cell)
			}
			want++
		}
	}
}

func TestSelectDay(t *testing.T) {
	today := time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

	if _, err := SelectDay(2026, time.August, 14, today); err == nil {
		t.Error("expected past day selection to be rejected")
	}

	// Today itself is selectable; only strictly-before dates are past.
	got, err := SelectDay(2026, time.August, 15, today)
	if err != nil {
		t.Fatalf("selecting today failed: %v", err)
	}
	if got != "2026-08-15" {
		t.Errorf("SelectDay = %q, want %q", got, "2026-08-15")
	}

	got, err = SelectDay(2026, time.September, 3, today)
	if err != nil {
		t.Fatalf("selecting future day failed: %v", err)
	}
	if got != "2026-09-03" {
		t.Errorf("SelectDay = %q, want zero-padded %q", got, "2026-09-03")
	}

	if _, err := SelectDay(2026, time.August, Empty, today); err == nil {
		t.Error("expected empty cell selection to be rejected")
	}
	if _, err := SelectDay(2026, time.August, 32, today); err == nil {
		t.Error("expected out-of-range day to be rejected")
	}
}

func TestPastAndTodayClassification(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	if !IsPast(2026, time.March, 9, today) {
		t.Error("yesterday should be past")
	}
	if IsPast(2026, time.March, 10, today) {
		t.Error("today should not be past, regardless of time of day")
	}
	if !IsPast(2025, time.December, 31, today) {
		t.Error("previous year should be past")
	}
	if IsPast(2026, time.April, 1, today) {
		t.Error("next month should not be past")
	}

	if !IsToday(2026, time.March, 10, today) {
		t.Error("expected IsToday for the current date")
	}
	if IsToday(2026, time.March, 11, today) {
		t.Error("tomorrow is not today")
	}
}
