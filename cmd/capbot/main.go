package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/capbot/internal/api/data"
	"github.com/omarshaarawi/capbot/internal/api/fantasy"
	"github.com/omarshaarawi/capbot/internal/bot"
	"github.com/omarshaarawi/capbot/internal/config"
	"github.com/omarshaarawi/capbot/internal/repository/memory"
	"github.com/omarshaarawi/capbot/internal/scheduler"
	"github.com/omarshaarawi/capbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataClient := data.NewClient(cfg.DataAPI)
	dataAPI := data.NewAPI(dataClient)
	fantasyAPI := fantasy.NewAPI(dataAPI, cfg.SalaryCap.Keys()...)

	repo := memory.NewRepository()
	capService := service.NewCapService(fantasyAPI, repo, cfg.SalaryCap.TeamSize, cfg.SalaryCap.Keys())

	if _, err := capService.Refresh(ctx, true); err != nil {
		slog.Error("Initial league load failed, the scheduler will retry", "error", err)
	}

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, capService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(capService, telegramBot.SendMessage, cfg.Scheduler)
	if err != nil {
		return err
	}

	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler(capService))

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

// healthCheckHandler reports 503 until the first league load succeeds.
func healthCheckHandler(capService *service.CapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := capService.Status()
		w.Header().Set("Content-Type", "application/json")
		if !status.Loaded {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			slog.Error("Error writing health status", "error", err)
		}
	}
}
