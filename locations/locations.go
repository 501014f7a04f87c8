// Package locations resolves station names against the static table
// defined in the configuration. There is no geocoding involved: a lookup
// either hits a configured station or fails with manager.ErrNotFound.
package locations

import (
	"fmt"
	"strings"

	"wx/manager"
)

func New(stations []manager.Station) *resolver {
	r := &resolver{
		stations: make([]manager.Station, len(stations)),
		byKey:    make(map[string]manager.Station, 2*len(stations)),
	}
	copy(r.stations, stations)

	for _, station := range stations {
		r.byKey[strings.ToLower(station.Code)] = station
		r.byKey[strings.ToLower(station.Name)] = station
	}

	return r
}

type resolver struct {
	stations []manager.Station
	byKey    map[string]manager.Station
}

// Resolve matches the station code or the human-readable name,
// case-insensitively.
func (r *resolver) Resolve(name string) (manager.Station, error) {
	station, ok := r.byKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return manager.Station{}, fmt.Errorf("location %q: %w", name, manager.ErrNotFound)
	}

	return station, nil
}

// Stations returns the table in its configured order.
func (r *resolver) Stations() []manager.Station {
	out := make([]manager.Station, len(r.stations))
	copy(out, r.stations)

	return out
}
