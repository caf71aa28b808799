package schedule

import "github.com/clinicdesk/clinic-manager/internal/timeutil"

// Booking is the slice of an appointment that availability cares
// about: its stored 24-hour time and its status.
type Booking struct {
	Time   string
	Status string
}

// SlotAvailability is a catalog slot annotated with whether an active
// appointment already holds it.
type SlotAvailability struct {
	Slot
	Booked bool `json:"booked"`
}

// BookedLabels converts the non-cancelled bookings of one (date,
// doctor) pair into the set of 12-hour slot labels they occupy.
func BookedLabels(bookings []Booking) map[string]bool {
	taken := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if !IsActive(Status(b.Status)) {
			continue
		}
		if label := timeutil.To12Hour(b.Time); label != "" {
			taken[label] = true
		}
	}
	return taken
}

// Availability marks each catalog slot booked or free against the
// given day's bookings. A slot is booked iff its label matches an
// active appointment's converted time exactly.
func Availability(bookings []Booking) []SlotAvailability {
	taken := BookedLabels(bookings)

	catalog := Catalog()
	out := make([]SlotAvailability, 0, len(catalog))
	for _, slot := range catalog {
		out = append(out, SlotAvailability{
			Slot:   slot,
			Booked: taken[slot.Label],
		})
	}
	return out
}
