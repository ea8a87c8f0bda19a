package domain

import "time"

const dayMillis = 24 * 60 * 60 * 1000

// ExtraDelay converts a stored UTC offset into the additional wait a
// subscriber's morning delivery needs after the daily trigger fires.
// Negative offsets wrap into a positive sub-24h wait (24h + offset);
// non-negative offsets pass through unchanged. The sign convention is
// the observed production behavior and does not generalize to every
// host-zone/offset combination; it is kept as-is and pinned by tests.
func ExtraDelay(offsetMillis int64) time.Duration {
	if offsetMillis < 0 {
		return time.Duration(dayMillis+offsetMillis) * time.Millisecond
	}
	return time.Duration(offsetMillis) * time.Millisecond
}
