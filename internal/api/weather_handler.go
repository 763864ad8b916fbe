package api

import (
	"net/http"

	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/weather"
)

// WeatherHandler serves cached daily forecasts for calendar days.
type WeatherHandler struct {
	forecasts *weather.Client
}

// NewWeatherHandler creates a new WeatherHandler over the forecast client.
func NewWeatherHandler(forecasts *weather.Client) *WeatherHandler {
	return &WeatherHandler{forecasts: forecasts}
}

// GetWeather handles GET /weather?date=YYYY-MM-DD. Dates outside the
// forecast window yield an empty object, matching what calendar clients
// expect for far-future days.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "date is required")
		return
	}

	forecast, found, err := h.forecasts.ForecastForDate(r.Context(), date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !found {
		shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}
