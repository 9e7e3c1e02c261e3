// Le Guide - terminal chat client
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/maisondeculture/leguide/internal/client"
	"github.com/maisondeculture/leguide/internal/conversation"
	"github.com/maisondeculture/leguide/internal/domain"
	"github.com/maisondeculture/leguide/internal/generator"
	"github.com/maisondeculture/leguide/internal/store"
	"github.com/maisondeculture/leguide/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", os.Getenv("LEGUIDE_API_URL"), "Chat server URL (empty answers in-process)")
	dbPath := flag.String("db", envOr("LEGUIDE_CHAT_DB", "./data/chat.db"), "SQLite session cache path (empty keeps history in memory)")
	lang := flag.String("lang", envOr("LEGUIDE_LANG", domain.LanguageEnglish), "UI language: en, fr or ro")
	country := flag.String("country", envOr("LEGUIDE_COUNTRY", "us"), "Country sent with every request")
	timeout := flag.Duration("timeout", conversation.DefaultTimeout, "Reply deadline")
	logPath := flag.String("log", envOr("LEGUIDE_CHAT_LOG", "./data/logs/chat.log"), "Log file path")
	flag.Parse()

	// The terminal belongs to the conversation; logs only go to the file.
	logger, logFile, err := telemetry.InitLogger(*logPath, false, slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logFile.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessions store.SessionStore = store.NewMemory()
	if *dbPath != "" {
		sqlite, err := store.NewSQLite(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if closeErr := sqlite.Close(); closeErr != nil {
				logger.Error("Failed to close session store", "error", closeErr)
			}
		}()
		sessions = sqlite
	}

	var responder conversation.Responder = generator.New(logger)
	if *apiURL != "" {
		responder = client.New(*apiURL, nil)
	}

	bc := domain.DefaultContext(*lang)
	bc.Country = *country
	ctrl, err := conversation.New(conversation.Options{
		Responder: responder,
		Store:     sessions,
		Language:  *lang,
		Context:   &bc,
		Logger:    logger,
		Timeout:   *timeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	restoreCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	ctrl.Restore(restoreCtx)
	cancel()

	r := newREPL(ctrl, os.Stdin, os.Stdout)
	r.run(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
