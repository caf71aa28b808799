package schedule

import (
	"fmt"

	"github.com/clinicdesk/clinic-manager/internal/timeutil"
)

// ===============================
// Slot Catalog
// ===============================

type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
)

// Slot is one 30-minute bookable position in the clinic's day.
type Slot struct {
	// Label is the 12-hour display form, e.g. "08:00 AM".
	Label string `json:"label"`
	// Time is the 24-hour storage form, e.g. "08:00:00".
	Time   string `json:"time"`
	Period Period `json:"period"`
}

// Catalog returns the fixed slot grid: every half hour from 08:00
// through 17:30, tagged Morning (08:00-11:30), Afternoon (12:00-15:30)
// or Evening (16:00-17:30).
func Catalog() []Slot {
	var slots []Slot
	for hour := 8; hour <= 17; hour++ {
		for _, minute := range []int{0, 30} {
			t24 := fmt.Sprintf("%02d:%02d:00", hour, minute)
			slots = append(slots, Slot{
				Label:  timeutil.To12Hour(t24),
				Time:   t24,
				Period: periodOf(hour),
			})
		}
	}
	return slots
}

func periodOf(hour int) Period {
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 16:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
