package tzclock

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrUnknownZone is returned when a zone is not part of the city list.
var ErrUnknownZone = errors.New("tzclock: zone not in city list")

// WallClockSample is the hour/minute/second reading of a moment as observed
// in a particular zone.
type WallClockSample struct {
	Hours   int // 0-23
	Minutes int // 0-59
	Seconds int // 0-59
}

// SampleOf returns the wall-clock fields of t in t's own location.
func SampleOf(t time.Time) WallClockSample {
	h, m, s := t.Clock()
	return WallClockSample{Hours: h, Minutes: m, Seconds: s}
}

// ZoneResolver converts an instant into the wall-clock fields of a named zone.
type ZoneResolver interface {
	Sample(now time.Time, zone string) (WallClockSample, error)
}

// LocationResolver resolves zones through the Go time zone database and caches
// loaded locations. Only zones from the city list are accepted.
type LocationResolver struct {
	mu   sync.RWMutex
	locs map[string]*time.Location
	load func(name string) (*time.Location, error)
}

// NewLocationResolver returns a resolver backed by time.LoadLocation.
func NewLocationResolver() *LocationResolver {
	return &LocationResolver{
		locs: make(map[string]*time.Location, len(cityTable)),
		load: time.LoadLocation,
	}
}

// Sample implements ZoneResolver.
func (r *LocationResolver) Sample(now time.Time, zone string) (WallClockSample, error) {
	loc, err := r.location(zone)
	if err != nil {
		return WallClockSample{}, err
	}
	return SampleOf(now.In(loc)), nil
}

func (r *LocationResolver) location(zone string) (*time.Location, error) {
	if !IsListedTimezone(zone) {
		return nil, fmt.Errorf("resolve %q: %w", zone, ErrUnknownZone)
	}

	r.mu.RLock()
	loc, ok := r.locs[zone]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := r.load(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", zone, err)
	}
	r.mu.Lock()
	r.locs[zone] = loc
	r.mu.Unlock()
	return loc, nil
}
