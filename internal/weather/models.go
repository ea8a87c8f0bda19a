package weather

// Response models for api.weatherapi.com v1. Only the fields the bot
// renders are mapped; unknown keys are ignored by encoding/json.

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"` // "yyyy-MM-dd HH:mm"
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	WindKph     float64   `json:"wind_kph"`
	Humidity    int       `json:"humidity"`
	UV          float64   `json:"uv"`
	Condition   Condition `json:"condition"`
}

type Day struct {
	AvgTempC          float64   `json:"avgtemp_c"`
	AvgTempF          float64   `json:"avgtemp_f"`
	AvgHumidity       float64   `json:"avghumidity"`
	DailyWillItRain   int       `json:"daily_will_it_rain"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	UV                float64   `json:"uv"`
	Condition         Condition `json:"condition"`
}

type Hour struct {
	Time      string    `json:"time"` // "yyyy-MM-dd HH:mm"
	Condition Condition `json:"condition"`
}

type ForecastDay struct {
	Date  string `json:"date"`
	Day   Day    `json:"day"`
	Hours []Hour `json:"hour"`
}

type Forecast struct {
	ForecastDays []ForecastDay `json:"forecastday"`
}

type Alert struct {
	Headline string `json:"headline"`
	Severity string `json:"severity"`
	Event    string `json:"event"`
	Desc     string `json:"desc"`
}

type Alerts struct {
	Alert []Alert `json:"alert"`
}

type CurrentResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
	Alerts   Alerts   `json:"alerts"`
}

type TimezoneResponse struct {
	Location Location `json:"location"`
}
