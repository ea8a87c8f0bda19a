package telegram

import (
	"fmt"
	"strings"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/weather"
)

// conditionEmoji maps weatherapi.com condition codes to an emoji.
func conditionEmoji(code int) string {
	switch code {
	case 1000:
		return "☀️"
	case 1003, 1006, 1009:
		return "☁️"
	case 1063, 1069, 1072, 1150, 1153, 1180, 1183, 1186, 1189, 1192, 1195, 1240, 1243, 1246:
		return "🌧️"
	case 1168, 1171, 1198, 1201, 1204, 1207, 1249, 1252:
		return "🌧️❄️"
	case 1087, 1273, 1276:
		return "⛈️"
	case 1279, 1282:
		return "⛈️❄️"
	case 1030, 1135:
		return "🌫️"
	case 1066, 1114, 1117, 1210, 1213, 1216, 1219, 1222, 1225, 1237, 1255, 1258, 1261, 1264:
		return "❄️"
	case 1147:
		return "🌫️❄️"
	default:
		return ""
	}
}

func buildCurrentMessage(resp *weather.CurrentResponse) string {
	cur := resp.Current
	return fmt.Sprintf(`Current Weather Information

%s %s

🌡️ Temperature: %g°C / %g°F

💨 Wind Speed: %gkm/h

💧 Humidity: %d%%

☀️ UV Index: %g

Last updated by %s`,
		conditionEmoji(cur.Condition.Code), cur.Condition.Text,
		cur.TempC, cur.TempF,
		cur.WindKph,
		cur.Humidity,
		cur.UV,
		cur.LastUpdated,
	)
}

func buildTodayMessage(resp *weather.ForecastResponse) string {
	if len(resp.Forecast.ForecastDays) == 0 {
		return weatherUnavailableText
	}
	today := resp.Forecast.ForecastDays[0]
	day := today.Day

	rain := "No"
	if day.DailyWillItRain == 1 {
		rain = "Yes"
	}

	var b strings.Builder
	if len(resp.Alerts.Alert) > 0 && resp.Alerts.Alert[0].Headline != "" {
		fmt.Fprintf(&b, "⚠️ %s\n\n", resp.Alerts.Alert[0].Headline)
	}
	fmt.Fprintf(&b, `Today's Weather Information

%s %s

🌧️ Rain: %s (%d%% chance)

🌡️ Average Temperature: %g°C / %g°F

💧 Average Humidity: %d%%

☀️ UV Index: %g

Hourly Weather Information
`,
		conditionEmoji(day.Condition.Code), day.Condition.Text,
		rain, day.DailyChanceOfRain,
		day.AvgTempC, day.AvgTempF,
		int(day.AvgHumidity),
		day.UV,
	)

	localClock := domain.ClockFromLocaltime(resp.Location.Localtime)
	b.WriteString(futureHourLines(today.Hours, localClock))
	return b.String()
}

// futureHourLines renders the hourly entries from the current local hour
// onward, one "HH:MM - condition emoji" line each.
func futureHourLines(hours []weather.Hour, localClock string) string {
	if len(localClock) < 2 {
		return ""
	}
	var b strings.Builder
	for _, h := range hours {
		clock := domain.ClockFromLocaltime(h.Time)
		if len(clock) < 2 || clock[:2] < localClock[:2] {
			continue
		}
		line := fmt.Sprintf("%s - %s %s", clock, h.Condition.Text, conditionEmoji(h.Condition.Code))
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func buildForecastMessage(resp *weather.ForecastResponse) string {
	days := resp.Forecast.ForecastDays
	if len(days) == 0 {
		return weatherUnavailableText
	}
	lines := make([]string, 0, len(days))
	for _, fd := range days {
		line := fmt.Sprintf("%s - %s %s", fd.Date, fd.Day.Condition.Text, conditionEmoji(fd.Day.Condition.Code))
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}
