package weather

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/adapters/file"
	"fmbot/internal/core/domain"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const BaseURL = "https://api.openweathermap.org"

// OpenWeatherMap provides a wrapper for the OpenWeatherMap current weather API.
type OpenWeatherMap struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	lang       string
}

func NewOpenWeatherMap(httpClient *http.Client, baseURL, apiKey, units, lang string) *OpenWeatherMap {
	return &OpenWeatherMap{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		units:      units,
		lang:       lang,
	}
}

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (o *OpenWeatherMap) Current(ctx context.Context, location string) (domain.Weather, error) {
	params := url.Values{}
	params.Add("q", location)
	params.Add("units", o.units)
	params.Add("lang", o.lang)
	params.Add("appid", o.apiKey)

	endpoint := o.baseURL + "/data/2.5/weather?" + params.Encode()

	var result currentResponse
	err := file.DownloadJSON(ctx, o.httpClient, endpoint, &result)

	var statusErr *file.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return domain.Weather{}, fmt.Errorf("%q: %w", location, domain.ErrLocationNotFound)
	}
	if err != nil {
		return domain.Weather{}, fmt.Errorf("openweathermap request failed: %w", err)
	}

	if result.Main == nil || len(result.Weather) == 0 {
		return domain.Weather{}, errors.New("incomplete openweathermap response")
	}

	log.Debug().Interface("result", result).Msg("openweathermap response")

	return domain.Weather{
		Temperature: result.Main.Temp,
		Description: result.Weather[0].Description,
		Icon:        result.Weather[0].Icon,
	}, nil
}
