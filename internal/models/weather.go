package models

import "time"

// Weather is the current condition for a city
type Weather struct {
	City        string     `json:"city"`
	TempC       string     `json:"temp_c"`
	Description string     `json:"description"`
	Humidity    string     `json:"humidity"`
	WindKmph    string     `json:"wind_kmph"`
	Icon        string     `json:"icon"`
	Forecast    []Forecast `json:"forecast,omitempty"`
}

// Forecast is one day of the short-range forecast
type Forecast struct {
	Date     string `json:"date"` // Format: YYYY-MM-DD
	MaxTempC string `json:"max_temp_c"`
	MinTempC string `json:"min_temp_c"`
	Icon     string `json:"icon"`
}

// WeatherSnapshot is the last known weather state for a city
type WeatherSnapshot struct {
	City      string    `json:"city"`
	Weather   *Weather  `json:"weather,omitempty"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
