package manager

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	station Station
	err     error
}

func (s *stubResolver) Resolve(name string) (Station, error) {
	if s.err != nil {
		return Station{}, s.err
	}
	return s.station, nil
}

func (s *stubResolver) Stations() []Station {
	return []Station{s.station}
}

type stubForecaster struct {
	report    Report
	err       error
	gotPoint  Point
	gotHourly bool
	callCount int
}

func (s *stubForecaster) Get(ctx context.Context, point Point, hourly bool) (Report, error) {
	s.callCount++
	s.gotPoint = point
	s.gotHourly = hourly
	if s.err != nil {
		return Report{}, s.err
	}
	return s.report, nil
}

func TestGet(t *testing.T) {
	station := Station{
		Code:  "KLNK",
		Name:  "Lincoln",
		Point: Point{Latitude: 40.8508, Longitude: -96.7546},
	}
	forecaster := &stubForecaster{
		report: Report{Periods: []Period{{Name: "Tonight", Temperature: 72, TemperatureUnit: "F"}}},
	}

	weather := New(&stubResolver{station: station}, forecaster)

	report, err := weather.Get(context.Background(), Query{Location: "KLNK", Hourly: true})
	require.NoError(t, err)

	assert.Equal(t, station, report.Station)
	assert.Equal(t, 72, report.Periods[0].Temperature)
	assert.Equal(t, station.Point, forecaster.gotPoint)
	assert.True(t, forecaster.gotHourly)
	assert.Equal(t, 1, forecaster.callCount)
}

func TestGetUnknownLocation(t *testing.T) {
	resolver := &stubResolver{err: fmt.Errorf("location %q: %w", "KDEN", ErrNotFound)}
	forecaster := &stubForecaster{}

	weather := New(resolver, forecaster)

	_, err := weather.Get(context.Background(), Query{Location: "KDEN"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, forecaster.callCount)
}

func TestGetForecasterError(t *testing.T) {
	station := Station{Code: "KLNK", Name: "Lincoln"}
	forecaster := &stubForecaster{err: fmt.Errorf("status code: 503")}

	weather := New(&stubResolver{station: station}, forecaster)

	_, err := weather.Get(context.Background(), Query{Location: "KLNK"})
	assert.EqualError(t, err, "status code: 503")
}

func TestGetNoForecaster(t *testing.T) {
	weather := New(&stubResolver{}, nil)

	_, err := weather.Get(context.Background(), Query{Location: "KLNK"})
	assert.Error(t, err)
}

func TestStations(t *testing.T) {
	station := Station{Code: "KOMA", Name: "Omaha"}
	weather := New(&stubResolver{station: station}, &stubForecaster{})

	assert.Equal(t, []Station{station}, weather.Stations())
}
