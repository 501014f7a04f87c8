// Package nws is a client for the National Weather Service API
// (api.weather.gov). Forecasts are addressed in two hops: a point lookup
// returns the forecast URLs for a coordinate pair, then the forecast
// itself is fetched from the returned URL.
package nws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"wx/manager"
)

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    *zap.SugaredLogger
}

func New(opts Options) *client {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/geo+json")
	if opts.UserAgent != "" {
		httpClient.SetHeader("User-Agent", opts.UserAgent)
	}

	return &client{
		base: strings.TrimRight(opts.BaseURL, "/"),
		http: httpClient,
		log:  opts.Logger,
	}
}

type client struct {
	base string
	http *resty.Client
	log  *zap.SugaredLogger
}

func (c *client) Get(ctx context.Context, point manager.Point, hourly bool) (manager.Report, error) {
	endpoint, err := c.lookupPoint(ctx, point)
	if err != nil {
		return manager.Report{}, err
	}

	forecastURL := endpoint.forecast
	if hourly {
		forecastURL = endpoint.forecastHourly
	}
	if forecastURL == "" {
		return manager.Report{}, fmt.Errorf("point lookup returned no forecast url")
	}

	data, err := c.get(ctx, forecastURL)
	if err != nil {
		return manager.Report{}, err
	}

	report := report{}
	if err := report.unmarshal(data); err != nil {
		return manager.Report{}, err
	}

	report.Nearby = endpoint.nearby

	return report.Report, nil
}

type pointEndpoint struct {
	forecast       string
	forecastHourly string
	nearby         string
}

func (c *client) lookupPoint(ctx context.Context, point manager.Point) (pointEndpoint, error) {
	type result struct {
		Properties struct {
			Forecast         string `json:"forecast"`
			ForecastHourly   string `json:"forecastHourly"`
			RelativeLocation struct {
				Properties struct {
					City  string `json:"city"`
					State string `json:"state"`
				} `json:"properties"`
			} `json:"relativeLocation"`
		} `json:"properties"`
	}

	data, err := c.get(ctx, fmt.Sprintf("%s/points/%.4f,%.4f", c.base, point.Latitude, point.Longitude))
	if err != nil {
		return pointEndpoint{}, err
	}

	var r result
	if err := json.Unmarshal(data, &r); err != nil {
		return pointEndpoint{}, err
	}

	if r.Properties.Forecast == "" {
		return pointEndpoint{}, fmt.Errorf("point lookup returned no forecast url")
	}

	nearby := r.Properties.RelativeLocation.Properties.City
	if state := r.Properties.RelativeLocation.Properties.State; nearby != "" && state != "" {
		nearby = fmt.Sprintf("%s, %s", nearby, state)
	}

	return pointEndpoint{
		forecast:       r.Properties.Forecast,
		forecastHourly: r.Properties.ForecastHourly,
		nearby:         nearby,
	}, nil
}

func (c *client) get(ctx context.Context, url string) ([]byte, error) {
	c.log.Debugw("nws request", "url", url)

	response, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	if response.StatusCode() != 200 {
		buf := &bytes.Buffer{}

		if err = json.Indent(buf, response.Body(), "", "  "); err != nil {
			return nil, fmt.Errorf("status code: %d", response.StatusCode())
		}

		return nil, fmt.Errorf("status code: %d\n%s", response.StatusCode(), buf.String())
	}

	return response.Body(), nil
}

type report struct {
	manager.Report
}

func (r *report) unmarshal(data []byte) error {
	type result struct {
		Properties struct {
			UpdateTime time.Time `json:"updateTime"`
			Periods    []struct {
				Name             string    `json:"name"`
				StartTime        time.Time `json:"startTime"`
				Temperature      int       `json:"temperature"`
				TemperatureUnit  string    `json:"temperatureUnit"`
				WindSpeed        string    `json:"windSpeed"`
				WindDirection    string    `json:"windDirection"`
				ShortForecast    string    `json:"shortForecast"`
				DetailedForecast string    `json:"detailedForecast"`
				Dewpoint         struct {
					Value *float64 `json:"value"`
				} `json:"dewpoint"`
				RelativeHumidity struct {
					Value *int `json:"value"`
				} `json:"relativeHumidity"`
				ProbabilityOfPrecipitation struct {
					Value *int `json:"value"`
				} `json:"probabilityOfPrecipitation"`
			} `json:"periods"`
		} `json:"properties"`
	}

	var res result

	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}

	if len(res.Properties.Periods) == 0 {
		return fmt.Errorf("forecast contains no periods")
	}

	for _, period := range res.Properties.Periods {
		r.Periods = append(r.Periods, manager.Period{
			Name:             period.Name,
			StartTime:        period.StartTime,
			Temperature:      period.Temperature,
			TemperatureUnit:  period.TemperatureUnit,
			WindSpeed:        period.WindSpeed,
			WindDirection:    period.WindDirection,
			ShortForecast:    period.ShortForecast,
			DetailedForecast: period.DetailedForecast,
			DewpointC:        period.Dewpoint.Value,
			RelativeHumidity: period.RelativeHumidity.Value,
			PrecipChance:     period.ProbabilityOfPrecipitation.Value,
		})
	}
	r.Updated = res.Properties.UpdateTime

	return nil
}
