package billing_test

import (
	"errors"
	"testing"
	"time"

	"sushitrack-backend/billing"
)

func TestDateRangeValidate(t *testing.T) {
	ok := billing.DateRange{Start: day(2025, 3, 1), End: day(2025, 3, 1)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("single-day range must be valid, got %v", err)
	}

	inverted := billing.DateRange{Start: day(2025, 3, 2), End: day(2025, 3, 1)}
	if err := inverted.Validate(); !errors.Is(err, billing.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	// time-of-day must not make a same-day range inverted
	sameDay := billing.DateRange{
		Start: time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC),
	}
	if err := sameDay.Validate(); err != nil {
		t.Fatalf("calendar-date comparison must ignore time of day, got %v", err)
	}
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	rng := billing.DateRange{Start: day(2025, 3, 10), End: day(2025, 3, 12)}
	for _, d := range []time.Time{day(2025, 3, 10), day(2025, 3, 11), day(2025, 3, 12)} {
		if !rng.Contains(d) {
			t.Fatalf("%s must be inside the range", d.Format("2006-01-02"))
		}
	}
	for _, d := range []time.Time{day(2025, 3, 9), day(2025, 3, 13)} {
		if rng.Contains(d) {
			t.Fatalf("%s must be outside the range", d.Format("2006-01-02"))
		}
	}
}
