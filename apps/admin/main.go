package main

import (
	"context"
	"log"
	"os"

	"github.com/trezcool/unirepo/apps/shared"
	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/session"
	"github.com/trezcool/unirepo/services/logger"
	"github.com/trezcool/unirepo/services/notify"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf := core.NewConfig()

	zl, err := logsvc.NewZap(conf.LogLevel, conf.Debug)
	if err != nil {
		log.Printf("setting up logger: %v", err)
		return 1
	}
	logger := logsvc.NewZapLogger(zl.Named("ADMIN"))
	defer func() { _ = logger.Sync() }()

	// set up storage & services
	ctx := context.Background()
	app, err := shared.NewApp(ctx, conf, logger)
	if err != nil {
		logger.Error("setting up application", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("closing storage", err)
		}
	}()

	mgr, err := session.NewManager(ctx, app.Storage, app.UserSvc, notify.NewWriterNotifier(os.Stdout), logger, app.Translator)
	if err != nil {
		logger.Error("restoring session", err)
		return 1
	}

	// start CLI
	cli := commandLine{
		app:     app,
		session: mgr,
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Printf("\nerror: %s\n", cli.describe(err))
		}
		return 1
	}
	return 0
}
