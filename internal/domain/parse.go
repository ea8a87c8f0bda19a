package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyCity      = errors.New("empty city name")
)

// latLongRe accepts "<latitude> <longitude>" with a single separating
// space, optional sign and optional fractional part on each number.
var latLongRe = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?\s[+-]?\d+(?:\.\d+)?$`)

// ParseLatLong parses user input of the form "48.8567 2.3508".
// Anything that does not match the expected pattern is rejected with
// ErrMalformedInput before any number conversion is attempted.
func ParseLatLong(s string) (lat, long float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" || !latLongRe.MatchString(s) {
		return 0, 0, ErrMalformedInput
	}
	i := strings.IndexFunc(s, unicode.IsSpace)
	lat, err = strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedInput, s)
	}
	long, err = strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedInput, s)
	}
	return lat, long, nil
}

// ParseCity validates a free-text city name.
func ParseCity(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCity
	}
	return s, nil
}

// CanonicalName builds the display name "{name}, {region}, {country}",
// dropping the region segment entirely when the resolver returned none.
func CanonicalName(name, region, country string) string {
	if region == "" {
		return fmt.Sprintf("%s, %s", name, country)
	}
	return fmt.Sprintf("%s, %s, %s", name, region, country)
}

const localtimeLayout = "2006-01-02 15:04"

// UTCOffsetMillis derives a signed millisecond UTC offset from the
// provider's "yyyy-MM-dd HH:mm" local timestamp. The timestamp is parsed
// in loc and the offset is taken from that zone at the parsed instant.
// Production passes time.Local, which reproduces the historical behavior
// of reading the host zone's offset rather than the target location's
// (a known limitation, pinned by tests rather than silently corrected).
func UTCOffsetMillis(localtime string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(localtimeLayout, localtime, loc)
	if err != nil {
		return 0, fmt.Errorf("parse localtime %q: %w", localtime, err)
	}
	_, offsetSec := t.Zone()
	offsetHours := int64(offsetSec) / 3600
	offsetMinutes := (int64(offsetSec) / 60) % 60
	return (offsetHours*60 + offsetMinutes) * 60 * 1000, nil
}

// ClockFromLocaltime extracts "HH:MM" from a "yyyy-MM-dd H:mm" or
// "yyyy-MM-dd HH:mm" provider timestamp, zero-padding single-digit hours.
func ClockFromLocaltime(localtime string) string {
	if len(localtime) <= len("2006-01-02 ") {
		return ""
	}
	clock := localtime[len("2006-01-02 "):]
	if len(clock) == len("5:04") {
		clock = "0" + clock
	}
	return clock
}
