package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/config"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/notify"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/scheduler"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/store"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/telegram"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/weather"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	repo    store.Repo
	router  *telegram.Router
	daily   *scheduler.Daily
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting weatherwhiz-bot",
		zap.String("http", a.cfg.HTTPAddr),
		zap.Int("morning_hour", a.cfg.MorningHour),
		zap.Int("morning_minute", a.cfg.MorningMinute),
	)

	repo, err := store.OpenSQLite(ctx, a.cfg.DBPath)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("sqlite ready")

	httpClient := &http.Client{Timeout: a.cfg.HTTPTimeout}
	client := weather.NewClient(httpClient, a.cfg.WeatherAPIKey, a.cfg.WeatherBaseURL)

	a.router = telegram.NewRouter(a.bot, a.log, a.repo, client, a.cfg.ForecastDays)

	dispatcher := notify.NewDispatcher(a.repo, a.log, a.router)
	a.daily = scheduler.NewDaily(a.log, dispatcher.Run)
	a.daily.StartExecutionAt(a.cfg.MorningHour, a.cfg.MorningMinute, 0)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			a.daily.Stop()

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()
			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.repo != nil {
				_ = a.repo.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
