package manager

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

func New(resolver Resolver, forecaster Forecaster) *weather {
	return &weather{
		resolver:   resolver,
		forecaster: forecaster,
	}
}

type weather struct {
	resolver   Resolver
	forecaster Forecaster
}

func (w *weather) Get(ctx context.Context, query Query) (Report, error) {
	if w.forecaster == nil {
		return Report{}, fmt.Errorf("forecaster not configured")
	}

	station, err := w.resolver.Resolve(query.Location)
	if err != nil {
		return Report{}, err
	}

	report, err := w.forecaster.Get(ctx, station.Point, query.Hourly)
	if err != nil {
		return Report{}, err
	}

	report.Station = station

	return report, nil
}

func (w *weather) Stations() []Station {
	return w.resolver.Stations()
}
