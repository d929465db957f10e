package weather

// Condition is one weather condition entry (the API returns a list but
// effectively only the first element matters for display)
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Measurements holds the numeric readings of an observation
type Measurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// Wind holds wind readings in m/s
type Wind struct {
	Speed float64 `json:"speed"`
}

// Current is the current-conditions response
type Current struct {
	Name    string       `json:"name"`
	Weather []Condition  `json:"weather"`
	Main    Measurements `json:"main"`
	Wind    Wind         `json:"wind"`
}

// ForecastEntry is one 3-hourly forecast reading
type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    Measurements `json:"main"`
	Weather []Condition  `json:"weather"`
	DtTxt   string       `json:"dt_txt"`
}

// forecastResponse is the 5-day/3-hour forecast envelope
type forecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// Report bundles current conditions with the reduced 5-day forecast
type Report struct {
	Current  Current
	Forecast []ForecastEntry // One sampled reading per day
}
