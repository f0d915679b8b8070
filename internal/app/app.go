package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/donations/service"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/httpserver"
	"github.com/savioruz/culturepay/pkg/logger"
)

//go:generate go run github.com/google/wire/cmd/wire

type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	Donations  service.DonationService
}

func Run(cfg *config.Config) {
	if err := helper.InitTimezone(cfg.App.Timezone); err != nil {
		panic(fmt.Sprintf("failed to load timezone: %v", err))
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	defer cleanup()

	scheduler := Cron(app.Donations, cfg, app.Logger)
	if scheduler != nil {
		defer scheduler.Stop()
	}

	app.HTTPServer.Start()
	app.Logger.Info("app - Run - listening on " + app.HTTPServer.Address())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		app.Logger.Info("app - Run - signal: " + s.String())
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	err = app.HTTPServer.Shutdown()
	if err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
