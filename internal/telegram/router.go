package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/store"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/weather"
)

// Router wires Telegram updates to handlers. Updates are handled
// synchronously, which keeps each chat's configure/query/subscribe
// commands strictly sequenced without explicit locks.
type Router struct {
	bot      *tgbotapi.BotAPI
	log      *zap.Logger
	repo     store.Repo
	client   *weather.Client
	resolver *weather.Resolver

	forecastDays int
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, client *weather.Client, forecastDays int) *Router {
	return &Router{
		bot:          bot,
		log:          log,
		repo:         repo,
		client:       client,
		resolver:     weather.NewResolver(client),
		forecastDays: forecastDays,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	chatID := msg.Chat.ID

	// Native location share configures the chat's location directly.
	if msg.Location != nil {
		r.handleCoords(ctx, chatID, msg.Location.Latitude, msg.Location.Longitude)
		return
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/"+cmdStart):
		r.handleStart(chatID, msg.From)
	case strings.HasPrefix(text, "/"+cmdHelp):
		r.sendText(chatID, helpText)
	case strings.HasPrefix(text, "/"+cmdLatLong):
		r.handleLatLong(ctx, chatID, strings.TrimSpace(strings.TrimPrefix(text, "/"+cmdLatLong)))
	case strings.HasPrefix(text, "/"+cmdLocation):
		r.handleLocation(ctx, chatID)
	case strings.HasPrefix(text, "/"+cmdCity):
		r.handleCity(ctx, chatID, strings.TrimSpace(strings.TrimPrefix(text, "/"+cmdCity)))
	case strings.HasPrefix(text, "/"+cmdWeather):
		r.handleWeather(ctx, chatID)
	case strings.HasPrefix(text, "/"+cmdToday):
		r.handleToday(ctx, chatID)
	case strings.HasPrefix(text, "/"+cmdForecast):
		r.handleForecast(ctx, chatID)
	case strings.HasPrefix(text, "/"+cmdUnsubscribe):
		r.handleUnsubscribe(ctx, chatID)
	case strings.HasPrefix(text, "/"+cmdSubscribe):
		r.handleSubscribe(ctx, chatID)
	default:
		// Unknown text is ignored; commands are the whole surface.
	}
}

// SendMessage sends a plain text message to the given chat.
func (r *Router) SendMessage(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (r *Router) sendText(chatID int64, text string) {
	if err := r.SendMessage(chatID, text); err != nil {
		r.log.Error("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
