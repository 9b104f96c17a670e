package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"allowance-engine/internal/allowance"
	"allowance-engine/internal/config"
	"allowance-engine/internal/handler"
	"allowance-engine/internal/logging"
	"allowance-engine/internal/ratetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	table := ratetable.Default()
	if cfg.RateTable.Path != "" {
		table, err = ratetable.Load(cfg.RateTable.Path)
		if err != nil {
			logger.Fatal("Rate table failed to load", zap.String("path", cfg.RateTable.Path), zap.Error(err))
		}
		logger.Info("Rate table loaded", zap.String("path", cfg.RateTable.Path))
	}

	h := handler.New(allowance.NewCalculator(table), logger)
	server := &fasthttp.Server{
		Handler:            h.Serve,
		Name:               "allowance-engine",
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		MaxRequestBodySize: cfg.Server.MaxRequestBodySize,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Allowance engine starting", zap.String("addr", cfg.Addr()))
		errCh <- server.ListenAndServe(cfg.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("Server failed", zap.Error(err))
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	}
}
