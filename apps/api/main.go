package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/trezcool/unirepo/apps/api/echo"
	"github.com/trezcool/unirepo/apps/shared"
	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/services/logger"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	zl, err := logsvc.NewZap(conf.LogLevel, conf.Debug)
	if err != nil {
		log.Fatalf("setting up logger: %v", err)
	}
	std := logsvc.NewZapLogger(zl.Named("API"))
	defer func() { _ = std.Sync() }()

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up storage & services
	ctx := context.Background()
	app, err := shared.NewApp(ctx, conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up application: %v", err), err)
	}
	defer func() {
		if err = app.Close(); err != nil {
			logger.Error("closing storage", err)
		}
	}()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build), map[string]interface{}{
		"env":     conf.Env,
		"storage": conf.Storage.Engine,
		"origin":  conf.Storage.Origin,
	})
	defer logger.Info("Application stopped")

	if conf.SeedOnStart {
		if err = app.Seed(ctx); err != nil {
			logger.Fatal(fmt.Sprintf("seeding: %v", err), err)
		}
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("storage").Set(conf.Storage.Engine)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         logger,
			UserSvc:        app.UserSvc,
			MaterialSvc:    app.MaterialSvc,
			ProjectSvc:     app.ProjectSvc,
			CitationSvc:    app.CitationSvc,
			SupervisionSvc: app.SupervisionSvc,
			MessageSvc:     app.MessageSvc,
			Validate:       app.Validate,
			Translator:     app.Translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
