package records

import (
	"testing"

	"github.com/clinicdesk/clinic-manager/apiclient"
)

func sampleHistory() []apiclient.Visit {
	return []apiclient.Visit{
		{ID: 1, Patient: 7, Complaint: "Fever", Diagnosis: "Viral fever", PaymentStatus: "paid"},
		{ID: 2, Patient: 7, Complaint: "Follow up", Diagnosis: "Recovering", PaymentStatus: "pending"},
		{ID: 3, Patient: 7, Complaint: "Back pain", PaymentStatus: "pending"},
	}
}

func TestReplaceSwapsMatchingEntry(t *testing.T) {
	history := sampleHistory()
	updated := apiclient.Visit{ID: 2, Patient: 7, Complaint: "Follow up", Diagnosis: "Recovered", PaymentStatus: "paid"}

	out := Replace(history, updated)

	if len(out) != len(history) {
		t.Fatalf("expected %d visits, got %d", len(history), len(out))
	}
	if out[1].Diagnosis != "Recovered" || out[1].PaymentStatus != "paid" {
		t.Errorf("entry not replaced: %+v", out[1])
	}
	if out[0].ID != 1 || out[2].ID != 3 {
		t.Errorf("sibling entries disturbed: %+v", out)
	}
}

func TestReplaceDoesNotMutateOriginal(t *testing.T) {
	history := sampleHistory()
	Replace(history, apiclient.Visit{ID: 2, Diagnosis: "Recovered"})

	if history[1].Diagnosis != "Recovering" {
		t.Errorf("original history mutated: %+v", history[1])
	}
}

func TestReplaceUnknownIDLeavesHistoryIntact(t *testing.T) {
	history := sampleHistory()
	out := Replace(history, apiclient.Visit{ID: 99, Diagnosis: "Nope"})

	if len(out) != len(history) {
		t.Fatalf("length changed: %d", len(out))
	}
	for i := range history {
		if out[i] != history[i] {
			t.Errorf("entry %d changed: %+v", i, out[i])
		}
	}
}

func TestAddAppendsWithoutMutating(t *testing.T) {
	history := sampleHistory()
	v := apiclient.Visit{ID: 4, Patient: 7, Complaint: "Checkup"}

	out := Add(history, v)

	if len(out) != 4 || out[3].ID != 4 {
		t.Fatalf("expected appended visit, got %+v", out)
	}
	if len(history) != 3 {
		t.Errorf("original history grew: %d", len(history))
	}
}

func TestFind(t *testing.T) {
	history := sampleHistory()

	v, ok := Find(history, 3)
	if !ok || v.Complaint != "Back pain" {
		t.Errorf("expected visit 3, got %+v ok=%v", v, ok)
	}

	if _, ok := Find(history, 42); ok {
		t.Error("expected miss for unknown id")
	}
}
