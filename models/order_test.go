package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{"shipped", false},
		{"", false},
		{"PENDING", false},
	}

	for _, tt := range tests {
		if got := IsValidStatus(tt.status); got != tt.want {
			t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusCompleted, false},
		{"unknown from", "shipped", StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
