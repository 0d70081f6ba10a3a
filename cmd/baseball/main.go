package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	appgames "github.com/khaney64/baseball/internal/app/games"
	appplayers "github.com/khaney64/baseball/internal/app/players"
	"github.com/khaney64/baseball/internal/cli"
	"github.com/khaney64/baseball/internal/config"
	"github.com/khaney64/baseball/internal/logging"
	"github.com/khaney64/baseball/internal/providers"
	"github.com/khaney64/baseball/internal/providers/statsapi"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Service: "baseball",
		Out:     os.Stderr,
	})

	loc := providers.ResolveTimezone(cfg.Timezone)

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Location: loc,
		Logger:   logger,
	})
	clock := clockwork.NewRealClock()

	app := &cli.App{
		Games:   appgames.NewService(client, clock, loc),
		Players: appplayers.NewService(client, clock),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
