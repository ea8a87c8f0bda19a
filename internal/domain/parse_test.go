package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseLatLong(t *testing.T) {
	cases := []struct {
		in        string
		lat, long float64
		ok        bool
	}{
		{"48.8567 2.3508", 48.8567, 2.3508, true},
		{"-33.86 151.2", -33.86, 151.2, true},
		{"+12 -7", 12, -7, true},
		{"48.8567 2.3508", 0, 0, false}, // non-breaking space
		{"abc def", 0, 0, false},
		{"48.8567", 0, 0, false},
		{"48.8567  2.3508", 0, 0, false}, // double space
		{"48.8567 2.3508 7", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		lat, long, err := ParseLatLong(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseLatLong(%q): unexpected error %v", tc.in, err)
			}
			if lat != tc.lat || long != tc.long {
				t.Fatalf("ParseLatLong(%q) = (%v, %v), want (%v, %v)", tc.in, lat, long, tc.lat, tc.long)
			}
			continue
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("ParseLatLong(%q): want ErrMalformedInput, got %v", tc.in, err)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	if got := CanonicalName("Paris", "Île-de-France", "France"); got != "Paris, Île-de-France, France" {
		t.Fatalf("got %q", got)
	}
	// Empty region drops the middle segment entirely.
	if got := CanonicalName("Singapore", "", "Singapore"); got != "Singapore, Singapore" {
		t.Fatalf("got %q", got)
	}
}

func TestUTCOffsetMillis(t *testing.T) {
	// The offset comes from the zone the timestamp is parsed in, not from
	// the place the timestamp describes.
	cet := time.FixedZone("CET", 3600)
	off, err := UTCOffsetMillis("2023-05-01 09:30", cet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off != 3600000 {
		t.Fatalf("offset = %d, want 3600000", off)
	}

	est := time.FixedZone("EST", -5*3600)
	off, err = UTCOffsetMillis("2023-05-01 09:30", est)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off != -18000000 {
		t.Fatalf("offset = %d, want -18000000", off)
	}

	halfHour := time.FixedZone("IST", 5*3600+1800)
	off, err = UTCOffsetMillis("2023-05-01 09:30", halfHour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off != 19800000 {
		t.Fatalf("offset = %d, want 19800000", off)
	}

	if _, err := UTCOffsetMillis("not a timestamp", time.UTC); err == nil {
		t.Fatal("want error for unparseable localtime")
	}
}

func TestExtraDelay(t *testing.T) {
	// UTC-5 subscriber waits 24h-5h = 19h after the trigger.
	if got := ExtraDelay(-18000000); got != 68400000*time.Millisecond {
		t.Fatalf("ExtraDelay(-18000000) = %v, want 19h", got)
	}
	if got := ExtraDelay(3600000); got != time.Hour {
		t.Fatalf("ExtraDelay(3600000) = %v, want 1h", got)
	}
	if got := ExtraDelay(0); got != 0 {
		t.Fatalf("ExtraDelay(0) = %v, want 0", got)
	}
}

func TestClockFromLocaltime(t *testing.T) {
	if got := ClockFromLocaltime("2023-05-01 9:05"); got != "09:05" {
		t.Fatalf("got %q", got)
	}
	if got := ClockFromLocaltime("2023-05-01 19:05"); got != "19:05" {
		t.Fatalf("got %q", got)
	}
	if got := ClockFromLocaltime("2023-05-01"); got != "" {
		t.Fatalf("got %q", got)
	}
}
