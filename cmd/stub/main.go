package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"jsonapi/internal/app/client/config"
	"jsonapi/internal/app/stub"
	"jsonapi/internal/app/stub/data"
	"jsonapi/internal/utils/logger"
)

func main() {
	datasetPath := flag.String("data", "", "JSON файл с набором данных (users, posts, comments, todos)")
	flag.Parse()

	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.LogLevel, os.Stderr, false)

	ds := data.Default()
	if *datasetPath != "" {
		raw, err := os.ReadFile(*datasetPath)
		if err != nil {
			log.Error("не удалось прочитать набор данных", logger.Err(err))
			os.Exit(1)
		}
		if ds, err = data.FromJSON(raw); err != nil {
			log.Error("не удалось разобрать набор данных", logger.Err(err))
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              conf.StubAddress,
		Handler:           stub.New(ds, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("stub API запущен", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ошибка сервера", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка остановки: %v\n", err)
	}
}
