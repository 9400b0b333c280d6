// File: internal/data/reports_test.go
package data

import (
	"errors"
	"testing"
	"time"
)

func TestWindowRange(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		selector string
		start    time.Time
	}{
		{WindowDay, now.AddDate(0, 0, -1)},
		{WindowWeek, now.AddDate(0, 0, -7)},
		{WindowMonth, now.AddDate(0, -1, 0)},
		{"", now.AddDate(0, -1, 0)}, // default window is a month
	}

	for _, tt := range tests {
		start, end, err := WindowRange(tt.selector, now)
		if err != nil {
			t.Errorf("WindowRange(%q) returned error: %v", tt.selector, err)
			continue
		}
		if !start.Equal(tt.start) {
			t.Errorf("WindowRange(%q): expected start %v, got %v", tt.selector, tt.start, start)
		}
		if !end.Equal(now) {
			t.Errorf("WindowRange(%q): expected end %v, got %v", tt.selector, now, end)
		}
	}
}

func TestWindowRangeInvalid(t *testing.T) {
	_, _, err := WindowRange("year", time.Now())
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestDayRange(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	at := time.Date(2026, 8, 28, 23, 45, 0, 0, loc)
	start, end := DayRange(at)

	if start.Hour() != 0 || start.Day() != 28 {
		t.Errorf("expected midnight local start, got %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("expected end one day after start, got %v", end)
	}
	if !at.After(start) || !at.Before(end) {
		t.Errorf("timestamp should fall inside its own day range")
	}
}
