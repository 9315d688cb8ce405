package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	emulatorapp "github.com/10Narratives/workflows/internal/app/emulator"
	configutils "github.com/10Narratives/workflows/pkg/config"
	errorutils "github.com/10Narratives/workflows/pkg/errors"
	logutils "github.com/10Narratives/workflows/pkg/logging"
)

func main() {
	path := flag.String("config", "", "path to configuration file")
	env := flag.String("env", "", "launch environment")

	flag.Parse()

	cfg := errorutils.Must(configutils.Read[emulatorapp.Config](*path))
	log := errorutils.Must(logutils.NewLogger(*env))
	defer func() { _ = log.Sync() }()

	app := errorutils.Must(emulatorapp.NewApp(cfg, log))

	log.Info("starting workflows-emulator application")
	startupContext, startupCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Startup(startupContext))

	<-startupContext.Done()
	startupCancel()

	log.Info("stopping workflows-emulator application")
	shutdownContext, shutdownCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Shutdown(shutdownContext))

	shutdownCancel()
}
