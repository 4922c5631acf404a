package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"ahorro-bot/internal/bot"
	"ahorro-bot/internal/config"
	"ahorro-bot/internal/gemini"
	"ahorro-bot/internal/repository"
	"ahorro-bot/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := repository.SeedAccounts(db); err != nil {
		log.WithError(err).Fatal("seed accounts")
	}

	accountRepo := repository.NewAccountRepository(db)
	userRepo := repository.NewUserRepository(db)

	ledgerSvc := service.NewLedgerService(accountRepo)
	registrySvc := service.NewRegistryService(userRepo)
	summarySvc := service.NewSummaryService(ledgerSvc)
	assistantSvc := service.NewAssistantService(gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel))

	telegramBot, err := bot.New(cfg.TelegramToken, ledgerSvc, registrySvc, summarySvc, assistantSvc)
	if err != nil {
		log.WithError(err).Fatal("bot")
	}

	if interval := cfg.SummaryInterval(); interval > 0 {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(interval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := telegramBot.SendBalanceSummaries(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("summary broadcast")
			}
		}); err != nil {
			log.WithError(err).Fatal("schedule summaries")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Info("Ahorro bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("bot stopped with error")
	}
	log.Info("Shutdown complete.")
}
