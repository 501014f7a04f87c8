package manager

import (
	"context"
	"time"
)

type Weather interface {
	Get(ctx context.Context, query Query) (Report, error)
	Stations() []Station
}

type Resolver interface {
	Resolve(name string) (Station, error)
	Stations() []Station
}

type Forecaster interface {
	Get(ctx context.Context, point Point, hourly bool) (Report, error)
}

type Query struct {
	Location string
	Hourly   bool
}

type Point struct {
	Latitude  float64
	Longitude float64
}

// Station is a named place from the static location table.
type Station struct {
	Code  string
	Name  string
	Point Point
}

type Report struct {
	Station Station
	// Nearby is the city/state the provider places closest to the point.
	Nearby  string
	Updated time.Time
	Periods []Period
}

type Period struct {
	Name             string
	StartTime        time.Time
	Temperature      int
	TemperatureUnit  string
	WindSpeed        string
	WindDirection    string
	ShortForecast    string
	DetailedForecast string
	DewpointC        *float64
	RelativeHumidity *int
	PrecipChance     *int
}
