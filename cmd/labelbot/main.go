package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/khmershop/labelbot/internal/bot"
	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/extract"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Order template: built-in unless a file overrides it
	tpl := extract.DefaultTemplate()
	if cfg.Template.Path != "" {
		var err error
		tpl, err = extract.LoadTemplate(cfg.Template.Path)
		if err != nil {
			log.Fatalf("loading order template %s: %v", cfg.Template.Path, err)
		}
		log.Infow("order template loaded", "path", cfg.Template.Path)
	}

	slogger := slog.Default()
	extractor, err := extract.NewExtractor(tpl, slogger)
	if err != nil {
		log.Fatalf("extractor: %v", err)
	}

	gw, err := bot.NewTelegramGateway(cfg.Bot.Token, cfg.Bot.PollTimeout, slogger)
	if err != nil {
		log.Fatalf("telegram gateway: %v", err)
	}
	log.Infow("telegram session ready", "bot", gw.Username())

	controller := bot.NewController(gw, extractor, slogger)
	gw.Run(ctx, controller)

	log.Info("shutting down...")
}
