// Package records manages a patient's visit history as immutable
// values: edits produce a new collection rather than mutating entries
// in place, so no view ever observes a half-updated record.
package records

import "github.com/clinicdesk/clinic-manager/apiclient"

// Replace returns a copy of history with the entry matching visit.ID
// swapped for visit. An unknown ID leaves the history unchanged (a
// fresh copy is still returned).
func Replace(history []apiclient.Visit, visit apiclient.Visit) []apiclient.Visit {
	out := make([]apiclient.Visit, len(history))
	copy(out, history)

	for i, v := range out {
		if v.ID == visit.ID {
			out[i] = visit
			break
		}
	}
	return out
}

// Add returns a copy of history with visit appended.
func Add(history []apiclient.Visit, visit apiclient.Visit) []apiclient.Visit {
	out := make([]apiclient.Visit, 0, len(history)+1)
	out = append(out, history...)
	return append(out, visit)
}

// Find returns the visit with the given ID, or false.
func Find(history []apiclient.Visit, id uint) (apiclient.Visit, bool) {
	for _, v := range history {
		if v.ID == id {
			return v, true
		}
	}
	return apiclient.Visit{}, false
}
