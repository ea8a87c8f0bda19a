package telegram

import (
	"strings"
	"testing"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/weather"
)

func TestConditionEmoji(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{1000, "☀️"},
		{1006, "☁️"},
		{1195, "🌧️"},
		{1276, "⛈️"},
		{1135, "🌫️"},
		{1225, "❄️"},
		{1147, "🌫️❄️"},
		{9999, ""},
	}
	for _, tc := range cases {
		if got := conditionEmoji(tc.code); got != tc.want {
			t.Fatalf("conditionEmoji(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFutureHourLines(t *testing.T) {
	hours := []weather.Hour{
		{Time: "2023-05-01 08:00", Condition: weather.Condition{Text: "Sunny", Code: 1000}},
		{Time: "2023-05-01 14:00", Condition: weather.Condition{Text: "Cloudy", Code: 1006}},
		{Time: "2023-05-01 22:00", Condition: weather.Condition{Text: "Rain", Code: 1195}},
	}

	got := futureHourLines(hours, "14:30")
	if strings.Contains(got, "08:00") {
		t.Fatalf("past hour included:\n%s", got)
	}
	// The current hour is kept: comparison is by hour-of-day only.
	if !strings.Contains(got, "14:00 - Cloudy ☁️") {
		t.Fatalf("current hour missing:\n%s", got)
	}
	if !strings.Contains(got, "22:00 - Rain 🌧️") {
		t.Fatalf("evening hour missing:\n%s", got)
	}
}

func TestBuildTodayMessage(t *testing.T) {
	resp := &weather.ForecastResponse{
		Location: weather.Location{Localtime: "2023-05-01 9:30"},
		Forecast: weather.Forecast{ForecastDays: []weather.ForecastDay{{
			Date: "2023-05-01",
			Day: weather.Day{
				AvgTempC:          18.5,
				AvgTempF:          65.3,
				AvgHumidity:       60,
				DailyWillItRain:   1,
				DailyChanceOfRain: 80,
				UV:                4,
				Condition:         weather.Condition{Text: "Patchy rain possible", Code: 1063},
			},
			Hours: []weather.Hour{
				{Time: "2023-05-01 10:00", Condition: weather.Condition{Text: "Rain", Code: 1195}},
			},
		}}},
	}

	got := buildTodayMessage(resp)
	for _, want := range []string{
		"Today's Weather Information",
		"🌧️ Rain: Yes (80% chance)",
		"18.5°C / 65.3°F",
		"Average Humidity: 60%",
		"10:00 - Rain 🌧️",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("message missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "⚠️") {
		t.Fatalf("unexpected alert prefix:\n%s", got)
	}

	// An active alert prefixes the message with its headline.
	resp.Alerts = weather.Alerts{Alert: []weather.Alert{{Headline: "Flood warning"}}}
	got = buildTodayMessage(resp)
	if !strings.HasPrefix(got, "⚠️ Flood warning") {
		t.Fatalf("alert headline missing:\n%s", got)
	}
}

func TestBuildForecastMessage(t *testing.T) {
	resp := &weather.ForecastResponse{
		Forecast: weather.Forecast{ForecastDays: []weather.ForecastDay{
			{Date: "2023-05-01", Day: weather.Day{Condition: weather.Condition{Text: "Sunny", Code: 1000}}},
			{Date: "2023-05-02", Day: weather.Day{Condition: weather.Condition{Text: "Cloudy", Code: 1006}}},
			{Date: "2023-05-03", Day: weather.Day{Condition: weather.Condition{Text: "Rain", Code: 1195}}},
		}},
	}

	want := "2023-05-01 - Sunny ☀️\n2023-05-02 - Cloudy ☁️\n2023-05-03 - Rain 🌧️"
	if got := buildForecastMessage(resp); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildCurrentMessage(t *testing.T) {
	resp := &weather.CurrentResponse{
		Current: weather.Current{
			LastUpdated: "2023-05-01 09:15",
			TempC:       21.5,
			TempF:       70.7,
			WindKph:     13,
			Humidity:    55,
			UV:          5,
			Condition:   weather.Condition{Text: "Sunny", Code: 1000},
		},
	}

	got := buildCurrentMessage(resp)
	for _, want := range []string{
		"☀️ Sunny",
		"21.5°C / 70.7°F",
		"13km/h",
		"Humidity: 55%",
		"UV Index: 5",
		"Last updated by 2023-05-01 09:15",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("message missing %q:\n%s", want, got)
		}
	}
}
