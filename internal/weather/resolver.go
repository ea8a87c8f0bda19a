package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
)

// ErrResolution marks a failed or unusable timezone/geocoding lookup.
var ErrResolution = errors.New("location resolution failed")

// ResolvedLocation is the outcome of a successful lookup: canonical
// coordinates, display name, and a UTC offset snapshot.
type ResolvedLocation struct {
	Name            string
	Lat             float64
	Long            float64
	UTCOffsetMillis int64
}

// TimezoneAPI is the slice of Client the resolver needs.
type TimezoneAPI interface {
	TimezoneByCoords(ctx context.Context, lat, long float64) (*TimezoneResponse, error)
	TimezoneByCity(ctx context.Context, city string) (*TimezoneResponse, error)
}

// Resolver turns coordinates or a city name into a canonical location.
// The UTC offset is derived from the provider's localtime parsed in the
// process's local zone (see domain.UTCOffsetMillis for the caveat).
type Resolver struct {
	api TimezoneAPI
}

func NewResolver(api TimezoneAPI) *Resolver {
	return &Resolver{api: api}
}

// ByCoords resolves an explicit latitude/longitude pair.
func (r *Resolver) ByCoords(ctx context.Context, lat, long float64) (*ResolvedLocation, error) {
	tz, err := r.api.TimezoneByCoords(ctx, lat, long)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolution, err)
	}
	res, err := fromTimezoneResponse(tz)
	if err != nil {
		return nil, err
	}
	// Keep the user's own coordinates, not the provider's rounded match.
	res.Lat, res.Long = lat, long
	return res, nil
}

// ByCity resolves a free-text city name; the provider's coordinates for
// the matched place become the stored ones.
func (r *Resolver) ByCity(ctx context.Context, city string) (*ResolvedLocation, error) {
	tz, err := r.api.TimezoneByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolution, err)
	}
	return fromTimezoneResponse(tz)
}

func fromTimezoneResponse(tz *TimezoneResponse) (*ResolvedLocation, error) {
	loc := tz.Location
	if loc.Name == "" || loc.Country == "" {
		return nil, fmt.Errorf("%w: empty match", ErrResolution)
	}
	offset, err := domain.UTCOffsetMillis(loc.Localtime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolution, err)
	}
	return &ResolvedLocation{
		Name:            domain.CanonicalName(loc.Name, loc.Region, loc.Country),
		Lat:             loc.Lat,
		Long:            loc.Lon,
		UTCOffsetMillis: offset,
	}, nil
}
