package domain

// UserLocation is a per-chat snapshot of a resolved location.
// The UTC offset is captured once at configuration time and is not
// re-resolved when DST shifts.
type UserLocation struct {
	ChatID          int64
	Latitude        float64
	Longitude       float64
	Name            string // canonical display name, e.g. "Paris, Île-de-France, France"
	UTCOffsetMillis int64
}
