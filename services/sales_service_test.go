package services

import (
	"errors"
	"testing"
	"time"

	"restaurant-backend/models"
)

func TestParseSalesDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", "2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"wrong layout", "14-03-2025", time.Time{}, true},
		{"with time component", "2025-03-14T10:00:00Z", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSalesDate(tt.value)
			if tt.wantErr {
				var validationErr models.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSalesDate(%q) returned error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseSalesDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
