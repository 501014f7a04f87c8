package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wx/manager"
)

// ErrNoLocation is printed verbatim; the wording is part of the CLI contract.
var ErrNoLocation = errors.New("No location specified. Use --location to specify a location.")

func New(weather manager.Weather, level zap.AtomicLevel) (*cobra.Command, error) {
	var (
		location      string
		listLocations bool
		hourly        bool
		detailed      bool
		periods       int
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:           "wx",
		Short:         "CLI application for getting National Weather Service forecasts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				level.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listLocations {
				for _, station := range weather.Stations() {
					cmd.Printf("%s - %s\n", station.Code, station.Name)
				}
				return nil
			}

			if location == "" {
				return ErrNoLocation
			}

			report, err := weather.Get(cmd.Context(), manager.Query{Location: location, Hourly: hourly})
			if err != nil {
				return err
			}

			printReport(cmd, report, periods, detailed)

			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location code or name from the station table")
	cmd.Flags().BoolVar(&listLocations, "list-locations", false, "list all known locations and exit")
	cmd.Flags().BoolVar(&hourly, "hourly", false, "fetch the hourly forecast instead of the period forecast")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "print the detailed forecast text for each period")
	cmd.Flags().IntVar(&periods, "periods", 0, "limit the number of printed periods (0 prints all)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd, nil
}

func printReport(cmd *cobra.Command, report manager.Report, limit int, detailed bool) {
	cmd.Printf("LOCATION\t%s (%s)\n", report.Station.Name, report.Station.Code)
	if report.Nearby != "" {
		cmd.Printf("NEAR\t\t%s\n", report.Nearby)
	}
	if !report.Updated.IsZero() {
		cmd.Printf("UPDATED\t\t%s\n", report.Updated.UTC().Format("2006-01-02 15:04 MST"))
	}
	cmd.Printf("\n")

	periods := report.Periods
	if limit > 0 && len(periods) > limit {
		periods = periods[:limit]
	}

	for _, period := range periods {
		name := period.Name
		if name == "" {
			// Hourly periods come back unnamed.
			name = period.StartTime.Format("Mon 15:04")
		}

		line := fmt.Sprintf("%-16s %4d°%s  %-28s %s %s",
			name,
			period.Temperature,
			period.TemperatureUnit,
			period.ShortForecast,
			period.WindDirection,
			period.WindSpeed,
		)

		extras := make([]string, 0, 2)
		if period.PrecipChance != nil {
			extras = append(extras, fmt.Sprintf("precip %d%%", *period.PrecipChance))
		}
		if period.RelativeHumidity != nil {
			extras = append(extras, fmt.Sprintf("humidity %d%%", *period.RelativeHumidity))
		}
		if len(extras) > 0 {
			line += "  (" + strings.Join(extras, ", ") + ")"
		}

		cmd.Printf("%s\n", strings.TrimRight(line, " "))

		if detailed && period.DetailedForecast != "" {
			cmd.Printf("  %s\n", period.DetailedForecast)
		}
	}
}
