// Package shared wires the dependencies common to the API server and the admin CLI.
package shared

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/citation"
	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/message"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/seed"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/services/email"
	"github.com/trezcool/unirepo/storage/database/localstore"
	"github.com/trezcool/unirepo/storage/kv"
)

type App struct {
	Conf       *core.Config
	Logger     core.Logger
	Storage    core.Storage
	Validate   *validator.Validate
	Translator ut.Translator
	MailSvc    core.EmailService

	UserSvc        *user.Service
	MaterialSvc    *material.Service
	ProjectSvc     *project.Service
	CitationSvc    *citation.Service
	SupervisionSvc *supervision.Service
	MessageSvc     *message.Service
	Seeder         *seed.Seeder
}

// NewApp opens the configured storage and builds every service on top of it.
func NewApp(ctx context.Context, conf *core.Config, logger core.Logger) (*App, error) {
	storage, err := kv.Open(ctx, conf.Storage)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s storage", conf.Storage.Engine)
	}
	return NewAppWithStorage(conf, logger, storage), nil
}

// NewAppWithStorage builds every service on top of storage.
func NewAppWithStorage(conf *core.Config, logger core.Logger, storage core.Storage) *App {
	validate, translator := NewValidate()

	var mailSvc core.EmailService
	switch {
	case conf.TestMode:
		mailSvc = emailsvc.NewConsoleServiceMock(conf, logger)
	case conf.Debug || conf.SendgridApiKey == "":
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	default:
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	db := localstore.New(storage, logger)
	userRepo := localstore.NewUserRepository(db)
	materialRepo := localstore.NewMaterialRepository(db)
	projectRepo := localstore.NewProjectRepository(db)
	citationRepo := localstore.NewCitationRepository(db)
	supervisionRepo := localstore.NewSupervisionRepository(db)

	app := &App{
		Conf:       conf,
		Logger:     logger,
		Storage:    storage,
		Validate:   validate,
		Translator: translator,
		MailSvc:    mailSvc,
	}
	app.UserSvc = user.NewService(userRepo, validate)
	app.MaterialSvc = material.NewService(materialRepo, validate)
	app.SupervisionSvc = supervision.NewService(supervisionRepo, validate)
	app.ProjectSvc = project.NewService(projectRepo, app.SupervisionSvc, validate)
	app.CitationSvc = citation.NewService(citationRepo, app.SupervisionSvc, validate)
	app.MessageSvc = message.NewService(localstore.NewMessageRepository(db), app.UserSvc, app.SupervisionSvc, mailSvc, validate)
	app.Seeder = seed.NewSeeder(db, seed.Repositories{
		Users:        userRepo,
		Materials:    materialRepo,
		Projects:     projectRepo,
		Citations:    citationRepo,
		Supervisions: supervisionRepo,
	}, logger)
	return app
}

// Seed fills the empty partitions with the demo data set.
func (app *App) Seed(ctx context.Context) error {
	rep, err := app.Seeder.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "seeding storage")
	}
	if rep.Total() > 0 {
		app.Logger.Info("storage seeded", map[string]interface{}{"records": rep.Total()})
	}
	return nil
}

func (app *App) Close() error {
	return app.Storage.Close()
}
