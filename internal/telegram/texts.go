package telegram

// User-facing texts. Command words are spelled out here once so the help
// and error messages never drift from the router's routing table.
const (
	cmdStart       = "start"
	cmdHelp        = "help"
	cmdLocation    = "location"
	cmdCity        = "city"
	cmdLatLong     = "latlong"
	cmdWeather     = "weather"
	cmdToday       = "today"
	cmdForecast    = "forecast"
	cmdSubscribe   = "subscribe"
	cmdUnsubscribe = "unsubscribe"
)

const startTextFmt = `Hello %s!

I'm WeatherWhiz, your personal weather assistant.

You have to configure your current location before you can use any of my available features.

Please configure your location through one of the following approaches:

1. By sending me your location directly

2. By sending me your city's name using /` + cmdCity + `. For example, /` + cmdCity + ` Paris

3. By sending me your location's latitude and longitude using /` + cmdLatLong + ` in the format <latitude> <longitude>. For example, /` + cmdLatLong + ` 48.8567 2.3508`

const helpText = `Here's a quick guide to help you use our bot effectively:

1. To see the current configured location, type /` + cmdLocation + ` and you will receive the name of the location.

2. To configure your location using latitude and longitude, type /` + cmdLatLong + ` followed by your latitude and longitude in the format <latitude> <longitude>. For example, /` + cmdLatLong + ` 48.8567 2.3508

3. To configure your location using city name, type /` + cmdCity + ` followed by the name of your city. For example, /` + cmdCity + ` Paris

4. To get today's weather information for your configured location, type /` + cmdToday + ` and you will receive a summary of today's weather.

5. To get the current weather information for your configured location, type /` + cmdWeather + ` and you will receive the current weather information.

6. To get the next 3 days' forecast for your configured location, type /` + cmdForecast + `.

7. To subscribe to daily weather updates for your configured location, type /` + cmdSubscribe + ` and you will receive daily weather updates.

8. To unsubscribe from daily weather updates, type /` + cmdUnsubscribe + `.`

const notConfiguredText = `You have not configured your location yet.

Please configure your location through the following approaches:

1. By sending me your location directly

2. By sending me your city's name using the /` + cmdCity + ` command using the format /` + cmdCity + ` <city name>. For example, /` + cmdCity + ` Paris

3. By sending me your location's latitude and longitude using the /` + cmdLatLong + ` command using the format /` + cmdLatLong + ` <latitude> <longitude>. For example, /` + cmdLatLong + ` 48.8567 2.3508`

const malformedCityText = `Mal-formatted input.
Format: /` + cmdCity + ` <city name>
For example, /` + cmdCity + ` Paris`

const malformedLatLongText = `Mal-formatted input.
Format: /` + cmdLatLong + ` <latitude> <longitude>
For example, /` + cmdLatLong + ` 48.8567 2.3508`

const configuredFmt = `Location configured successfully!
Your location is %s

Type /` + cmdHelp + ` to see a list of features that I can provide.`

const subscribedText = `You have successfully subscribed to daily weather updates in the morning.

Please note that due to timezone differences, it may take up to a day for the change in your subscription status to take effect, and you may not receive your first weather update notification on the same day as your subscription.

To unsubscribe, please enter /` + cmdUnsubscribe

const unsubscribedText = `You have successfully unsubscribed from daily weather updates in the morning.

Please note that due to timezone differences, you may still receive one final weather update notification tomorrow before the change in your subscription status takes effect.`

const notSubscribedText = `You are not subscribed to the daily weather updates.

To subscribe, please enter /` + cmdSubscribe

const resolutionFailedText = "Sorry, I could not look up that location right now. Please try again later."

const weatherUnavailableText = "Sorry, I could not fetch the weather right now. Please try again later."
