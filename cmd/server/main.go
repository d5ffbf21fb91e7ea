package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/temporal-ledger/internal/config"
	"github.com/sheikh-saqib/temporal-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/temporal-ledger/internal/historian"
	"github.com/sheikh-saqib/temporal-ledger/internal/id"
	"github.com/sheikh-saqib/temporal-ledger/internal/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ids, err := id.New(id.Format(cfg.IDFormat))
	if err != nil {
		logger.Fatal("id generator", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []historian.Option{historian.WithLogger(logger)}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
		opts = append(opts, historian.WithPublisher(publisher, cfg.KafkaTopic))
	}
	hist := historian.New(opts...)
	driver := simulation.NewDriver(hist, logger)

	for run := 0; run < cfg.Runs; run++ {
		demo := newDepositDemo(ids, cfg.Deposit)
		res, err := driver.Run(ctx, demo.Ledgers(), cfg.Periods, demo)
		if err != nil {
			logger.Fatal("simulation run failed", zap.Int("run", run), zap.Error(err))
		}
		for _, l := range res.Ledgers {
			logger.Info("ledger closed",
				zap.Int("record_id", res.Record.ID),
				zap.String("ledger_id", l.ID()),
				zap.Stringer("balance", l.Balance()),
				zap.Int("journal", l.JournalLen()),
			)
		}
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: newMux(hist, logger)}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	logger.Info("Starting server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
