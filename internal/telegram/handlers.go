package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/store"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/weather"
)

func (r *Router) handleStart(chatID int64, from *tgbotapi.User) {
	name := "there"
	if from != nil && from.UserName != "" {
		name = from.UserName
	}
	r.sendText(chatID, fmt.Sprintf(startTextFmt, name))
}

// --- Location configuration ---

func (r *Router) handleCoords(ctx context.Context, chatID int64, lat, long float64) {
	res, err := r.resolver.ByCoords(ctx, lat, long)
	if err != nil {
		r.log.Warn("coordinate resolution failed",
			zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, resolutionFailedText)
		return
	}
	r.saveLocation(ctx, chatID, res)
}

func (r *Router) handleCity(ctx context.Context, chatID int64, input string) {
	city, err := domain.ParseCity(input)
	if err != nil {
		r.sendText(chatID, malformedCityText)
		return
	}
	res, err := r.resolver.ByCity(ctx, city)
	if err != nil {
		r.log.Warn("city resolution failed",
			zap.Int64("chat_id", chatID), zap.String("city", city), zap.Error(err))
		r.sendText(chatID, resolutionFailedText)
		return
	}
	r.saveLocation(ctx, chatID, res)
}

func (r *Router) handleLatLong(ctx context.Context, chatID int64, input string) {
	lat, long, err := domain.ParseLatLong(input)
	if err != nil {
		r.sendText(chatID, malformedLatLongText)
		return
	}
	r.handleCoords(ctx, chatID, lat, long)
}

func (r *Router) saveLocation(ctx context.Context, chatID int64, res *weather.ResolvedLocation) {
	loc := &domain.UserLocation{
		ChatID:          chatID,
		Latitude:        res.Lat,
		Longitude:       res.Long,
		Name:            res.Name,
		UTCOffsetMillis: res.UTCOffsetMillis,
	}
	if err := r.repo.PutLocation(ctx, loc); err != nil {
		r.log.Error("save location failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, resolutionFailedText)
		return
	}
	r.sendText(chatID, fmt.Sprintf(configuredFmt, loc.Name))
}

// configuredLocation returns the chat's stored location, or nil after
// sending the guidance message when none is configured.
func (r *Router) configuredLocation(ctx context.Context, chatID int64) *domain.UserLocation {
	loc, err := r.repo.GetLocation(ctx, chatID)
	if errors.Is(err, store.ErrNotFound) {
		r.sendText(chatID, notConfiguredText)
		return nil
	}
	if err != nil {
		r.log.Error("load location failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return nil
	}
	return loc
}

// --- Queries ---

func (r *Router) handleLocation(ctx context.Context, chatID int64) {
	loc := r.configuredLocation(ctx, chatID)
	if loc == nil {
		return
	}
	r.sendText(chatID, "Your location is "+loc.Name)
}

func (r *Router) handleWeather(ctx context.Context, chatID int64) {
	loc := r.configuredLocation(ctx, chatID)
	if loc == nil {
		return
	}
	resp, err := r.client.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		r.log.Error("current weather fetch failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return
	}
	r.sendText(chatID, buildCurrentMessage(resp))
}

func (r *Router) handleToday(ctx context.Context, chatID int64) {
	loc := r.configuredLocation(ctx, chatID)
	if loc == nil {
		return
	}
	text, err := r.todayText(ctx, loc)
	if err != nil {
		r.log.Error("today forecast fetch failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return
	}
	r.sendText(chatID, text)
}

func (r *Router) handleForecast(ctx context.Context, chatID int64) {
	loc := r.configuredLocation(ctx, chatID)
	if loc == nil {
		return
	}
	resp, err := r.client.Forecast(ctx, loc.Latitude, loc.Longitude, r.forecastDays)
	if err != nil {
		r.log.Error("forecast fetch failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return
	}
	r.sendText(chatID, buildForecastMessage(resp))
}

func (r *Router) todayText(ctx context.Context, loc *domain.UserLocation) (string, error) {
	resp, err := r.client.Forecast(ctx, loc.Latitude, loc.Longitude, r.forecastDays)
	if err != nil {
		return "", err
	}
	return buildTodayMessage(resp), nil
}

// SendTodayWeather fetches and sends today's weather for a chat. It is
// the morning-delivery entry point used by the notification dispatcher.
func (r *Router) SendTodayWeather(ctx context.Context, chatID int64) error {
	loc, err := r.repo.GetLocation(ctx, chatID)
	if err != nil {
		return fmt.Errorf("load location: %w", err)
	}
	text, err := r.todayText(ctx, loc)
	if err != nil {
		return fmt.Errorf("fetch today: %w", err)
	}
	return r.SendMessage(chatID, text)
}

// --- Subscription ---

func (r *Router) handleSubscribe(ctx context.Context, chatID int64) {
	// Subscribing requires a configured location; otherwise the morning
	// fanout would silently skip this chat forever.
	loc := r.configuredLocation(ctx, chatID)
	if loc == nil {
		return
	}
	if err := r.repo.AddSubscriber(ctx, chatID); err != nil {
		r.log.Error("subscribe failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return
	}
	r.sendText(chatID, subscribedText)
}

func (r *Router) handleUnsubscribe(ctx context.Context, chatID int64) {
	removed, err := r.repo.RemoveSubscriber(ctx, chatID)
	if err != nil {
		r.log.Error("unsubscribe failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.sendText(chatID, weatherUnavailableText)
		return
	}
	if removed {
		r.sendText(chatID, unsubscribedText)
		return
	}
	r.sendText(chatID, notSubscribedText)
}
