package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/omarshaarawi/capbot/internal/api/data"
	"github.com/omarshaarawi/capbot/internal/api/fantasy"
	"github.com/omarshaarawi/capbot/internal/config"
	"github.com/omarshaarawi/capbot/internal/mcpserver"
	"github.com/omarshaarawi/capbot/internal/repository/memory"
	"github.com/omarshaarawi/capbot/internal/service"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Error running MCP server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.NewMCP()
	if err != nil {
		return err
	}

	// stdout carries the protocol in stdio mode.
	if strings.EqualFold(cfg.MCP.Transport, "stdio") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataClient := data.NewClient(cfg.DataAPI)
	dataAPI := data.NewAPI(dataClient)
	fantasyAPI := fantasy.NewAPI(dataAPI, cfg.SalaryCap.Keys()...)

	repo := memory.NewRepository()
	capService := service.NewCapService(fantasyAPI, repo, cfg.SalaryCap.TeamSize, cfg.SalaryCap.Keys())

	if _, err := capService.Refresh(ctx, true); err != nil {
		slog.Error("Initial league load failed", "error", err)
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(cfg.MCP.RefreshInterval),
		gocron.NewTask(func() {
			if _, err := capService.Refresh(ctx, false); err != nil {
				slog.Error("Failed to refresh league data", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	server := mcpserver.NewServer(capService, version)

	if strings.EqualFold(cfg.MCP.Transport, "stdio") {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
	return serveHTTP(ctx, cfg.MCP.Addr, server)
}

func serveHTTP(ctx context.Context, addr string, server *mcpserver.Server) error {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server.Server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": server.Tools}, "", "  ")
		w.Write(b)
	})

	httpServer := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
		}
	}()

	slog.Info("MCP HTTP server listening", "addr", addr, "path", "/mcp")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Shutting down gracefully...")
	return nil
}
