package timeutil

import "testing"

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input falls back to default",
			input:    "",
			expected: "09:00:00",
		},
		{
			name:     "afternoon 12-hour time",
			input:    "2:15 PM",
			expected: "14:15:00",
		},
		{
			name:     "midnight",
			input:    "12:00 AM",
			expected: "00:00:00",
		},
		{
			name:     "half past noon",
			input:    "12:30 PM",
			expected: "12:30:00",
		},
		{
			name:     "noon",
			input:    "12:00 PM",
			expected: "12:00:00",
		},
		{
			name:     "morning with leading zero",
			input:    "09:30 AM",
			expected: "09:30:00",
		},
		{
			name:     "already 24-hour without seconds",
			input:    "9:30",
			expected: "09:30:00",
		},
		{
			name:     "already 24-hour with seconds",
			input:    "17:30:00",
			expected: "17:30:00",
		},
		{
			name:     "evening 12-hour time",
			input:    "5:30 PM",
			expected: "17:30:00",
		},
		{
			name:     "garbage falls back to default",
			input:    "not a time",
			expected: "09:00:00",
		},
		{
			name:     "hour past 23 falls back to default",
			input:    "25:00",
			expected: "09:00:00",
		},
		{
			name:     "negative hour falls back to default",
			input:    "-1:30",
			expected: "09:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := To24Hour(tt.input); got != tt.expected {
				t.Errorf("To24Hour(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "midnight", input: "00:00:00", expected: "12:00 AM"},
		{name: "morning", input: "08:00:00", expected: "08:00 AM"},
		{name: "noon", input: "12:00:00", expected: "12:00 PM"},
		{name: "afternoon", input: "14:15:00", expected: "02:15 PM"},
		{name: "last slot", input: "17:30:00", expected: "05:30 PM"},
		{name: "no seconds", input: "16:00", expected: "04:00 PM"},
		{name: "unparseable", input: "banana", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := To12Hour(tt.input); got != tt.expected {
				t.Errorf("To12Hour(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Displayed 12-hour labels must survive a trip through storage form.
	labels := []string{
		"08:00 AM", "08:30 AM", "09:00 AM", "11:30 AM",
		"12:00 PM", "12:30 PM", "03:30 PM", "04:00 PM", "05:30 PM",
	}
	for _, label := range labels {
		if got := To12Hour(To24Hour(label)); got != label {
			t.Errorf("round trip of %q produced %q", label, got)
		}
	}

	// 24-hour inputs round-trip back through the 12-hour display form.
	stored := []string{"00:15:00", "08:00:00", "12:45:00", "17:30:00", "23:00:00"}
	for _, s := range stored {
		if got := To24Hour(To12Hour(s)); got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}
