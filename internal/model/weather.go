package model

type CurrentConditions struct {
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection string  `json:"windDirection"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
	Description   string  `json:"description"`
	SoilMoisture  float64 `json:"soilMoisture"`
}

type HourlyForecast struct {
	Time     string  `json:"time"`
	Temp     float64 `json:"temp"`
	RainProb float64 `json:"rainProb"`
	Icon     string  `json:"icon"`
}

type DailyForecast struct {
	Date      string  `json:"date"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	RainMm    float64 `json:"rainMm"`
	RainProb  float64 `json:"rainProb"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}

type Forecast struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourlyForecast  `json:"hourly"`
	Daily   []DailyForecast   `json:"daily"`
}

type SprayStatus string

const (
	SprayRecommended SprayStatus = "recommended"
	SprayWarning     SprayStatus = "warning"
	SprayProhibited  SprayStatus = "prohibited"
)

// SprayAdvisory is the traffic light shown on the weather panel.
type SprayAdvisory struct {
	Status  SprayStatus `json:"status"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}
