package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wx/apis/nws"
	"wx/cli"
	"wx/config"
	"wx/locations"
	"wx/manager"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx := context.Background()

	cfg, err := config.Load(configRaw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger := newLogger(level)
	defer logger.Sync()

	stations := make([]manager.Station, 0, len(cfg.Locations))
	for _, location := range cfg.Locations {
		stations = append(stations, manager.Station{
			Code: location.Code,
			Name: location.Name,
			Point: manager.Point{
				Latitude:  location.Latitude,
				Longitude: location.Longitude,
			},
		})
	}

	forecaster := nws.New(nws.Options{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout.Std(),
		Logger:    logger.Sugar(),
	})

	weather := manager.New(locations.New(stations), forecaster)

	cmd, err := cli.New(weather, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level zap.AtomicLevel) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}
