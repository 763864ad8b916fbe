package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/teamcal/teamcal-api/internal/config"
	"github.com/teamcal/teamcal-api/internal/domain"
)

// Forecast is one calendar day's condensed weather.
type Forecast struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
	TempMax int    `json:"tempMax"`
	TempMin int    `json:"tempMin"`
}

// codeGlyphs maps Open-Meteo WMO weather codes to display glyphs.
var codeGlyphs = map[int]string{
	0: "☀", 1: "🌤", 2: "🌥", 3: "☁",
	45: "🌫", 48: "🌫",
	51: "🌦", 53: "🌦", 55: "🌦",
	56: "🌦🧊", 57: "🌦🧊",
	61: "☔", 63: "☔", 65: "☔",
	66: "🌧🧊", 67: "🌧🧊",
	71: "❄", 73: "❄", 75: "❄", 77: "❄",
	80: "🌧", 81: "🌧", 82: "🌧",
	85: "🌨", 86: "🌨",
	95: "🌩", 96: "🌩🧊", 99: "🌩🧊",
}

const unknownGlyph = "?"

// Client fetches and caches the daily forecast.
type Client struct {
	cfg        config.WeatherConfig
	httpClient *http.Client
	logger     *slog.Logger

	mu        sync.Mutex
	cached    []Forecast
	fetchedAt time.Time
}

// NewClient creates a forecast client. The cache starts empty; the first
// lookup triggers a fetch.
func NewClient(cfg config.WeatherConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "weather"),
	}
}

// ForecastForDate returns the forecast for the given date key. The second
// return value is false when the date is outside the forecast window; that
// is not an error.
func (c *Client) ForecastForDate(ctx context.Context, date string) (Forecast, bool, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return Forecast{}, false, err
	}

	list, err := c.forecasts(ctx)
	if err != nil {
		return Forecast{}, false, err
	}
	for _, f := range list {
		if f.Date == date {
			return f, true, nil
		}
	}
	return Forecast{}, false, nil
}

// forecasts returns the cached list, refreshing it when stale.
func (c *Client) forecasts(ctx context.Context) ([]Forecast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ttl := time.Duration(c.cfg.CacheTTLMinutes) * time.Minute
	if c.cached != nil && time.Since(c.fetchedAt) < ttl {
		return c.cached, nil
	}

	list, err := c.fetch(ctx)
	if err != nil {
		// Serve the stale copy if there is one; polling clients prefer
		// old data over an error.
		if c.cached != nil {
			c.logger.Warn("forecast refresh failed, serving stale cache", "error", err)
			return c.cached, nil
		}
		return nil, err
	}

	c.cached = list
	c.fetchedAt = time.Now()
	return list, nil
}

// openMeteoResponse mirrors the slice of the Open-Meteo payload we read.
type openMeteoResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (c *Client) fetch(ctx context.Context) ([]Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", c.cfg.Latitude))
	q.Set("longitude", fmt.Sprintf("%g", c.cfg.Longitude))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", c.cfg.Timezone)
	q.Set("forecast_days", fmt.Sprintf("%d", c.cfg.ForecastDays))
	endpoint := c.cfg.BaseURL + "?" + q.Encode()

	var payload openMeteoResponse
	backoff := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Debug("failed to close forecast response body", "error", err)
			}
		}()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("forecast API returned status %d", resp.StatusCode)
			if resp.StatusCode >= 500 {
				return retry.RetryableError(err)
			}
			return err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return json.Unmarshal(body, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	daily := payload.Daily
	if len(daily.WeatherCode) != len(daily.Time) ||
		len(daily.Temperature2mMax) != len(daily.Time) ||
		len(daily.Temperature2mMin) != len(daily.Time) {
		return nil, fmt.Errorf("forecast payload has mismatched series lengths")
	}

	list := make([]Forecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		glyph, ok := codeGlyphs[daily.WeatherCode[i]]
		if !ok {
			glyph = unknownGlyph
		}
		list = append(list, Forecast{
			Date:    date,
			Weather: glyph,
			TempMax: int(math.Round(daily.Temperature2mMax[i])),
			TempMin: int(math.Round(daily.Temperature2mMin[i])),
		})
	}

	c.logger.Info("forecast refreshed", "days", len(list))
	return list, nil
}
