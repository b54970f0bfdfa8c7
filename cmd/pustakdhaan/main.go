package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pustakdhaan/internal/app"
	"pustakdhaan/internal/config"
	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/pkg/logger"
	"pustakdhaan/internal/service"
	"pustakdhaan/internal/storage"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer l.Sync()

	badges := domain.BadgePolicy{Bronze: config.BadgeBronze, Silver: config.BadgeSilver, Gold: config.BadgeGold}
	if err := badges.Validate(); err != nil {
		log.Fatal(err)
	}

	storage, err := storage.NewPostgreSQL(config.DatabaseURI, l)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	const migrateTimeout = 30 * time.Second
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), migrateTimeout)
	err = storage.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		log.Fatal(err)
	}

	app := app.NewApp(storage, l, app.WithBadgePolicy(badges))
	service := service.NewService(app, config.ServerRunAddress, l)

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: service.RunAddress(), Handler: service.NewRouter(), ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	l.Sugar().Infof("Serving on %s", service.RunAddress())
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}

	<-serverCtx.Done()
}
