// cmd/discord/main.go
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/MubtasimTazwer/utility-bot/internal/command/core"
	_ "github.com/MubtasimTazwer/utility-bot/internal/command/moderation"
	_ "github.com/MubtasimTazwer/utility-bot/internal/command/roles"
	_ "github.com/MubtasimTazwer/utility-bot/internal/command/server"
	_ "github.com/MubtasimTazwer/utility-bot/internal/command/user"
	_ "github.com/MubtasimTazwer/utility-bot/internal/command/utilities"

	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/config"
	"github.com/MubtasimTazwer/utility-bot/internal/discord"
	"github.com/MubtasimTazwer/utility-bot/internal/football"
	"github.com/MubtasimTazwer/utility-bot/internal/keepalive"
	"github.com/MubtasimTazwer/utility-bot/internal/polls"
	"github.com/MubtasimTazwer/utility-bot/internal/reminders"
	"github.com/MubtasimTazwer/utility-bot/internal/scores"
	"github.com/MubtasimTazwer/utility-bot/internal/storage"
	v "github.com/MubtasimTazwer/utility-bot/internal/version"

	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}))

	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	defer store.Close()

	deps := &command.Deps{
		Cfg:       cfg,
		Storage:   store,
		Polls:     polls.NewMemoryStore(),
		Reminders: reminders.NewScheduler(ctx),
		Scores:    scores.NewManager(),
		Football:  football.NewClient(cfg.FootballAPIURL, cfg.FootballAPIKey),
	}

	go keepalive.RunServer(ctx, cfg.KeepAliveAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, deps); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Bot exited cleanly")
}
