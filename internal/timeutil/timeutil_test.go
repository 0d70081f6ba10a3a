package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("07/04/2025")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "07/04/2025" {
		t.Fatalf("expected date to round-trip, got %s", got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"2025-07-04", "7/4/25", "July 4, 2025", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected %q to fail to parse", bad)
		}
	}
}

func TestParseGameTimeShiftsIntoLocation(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	got := ParseGameTime("2025-07-04T23:10:00Z", loc)
	if got == nil {
		t.Fatalf("expected a parsed time")
	}
	if got.Hour() != 19 || got.Minute() != 10 {
		t.Fatalf("expected 19:10 local, got %s", got.Format("15:04"))
	}
}

func TestParseGameTimeHandlesBadInput(t *testing.T) {
	if got := ParseGameTime("", time.UTC); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := ParseGameTime("not-a-time", time.UTC); got != nil {
		t.Fatalf("expected nil for malformed input, got %v", got)
	}
}
