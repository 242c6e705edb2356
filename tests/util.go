package testutil

import (
	"context"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/unirepo/apps/shared"
	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/citation"
	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/message"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/services/email"
	"github.com/trezcool/unirepo/services/logger"
	"github.com/trezcool/unirepo/storage/database/localstore"
	"github.com/trezcool/unirepo/storage/kv/memory"
)

// Env wires every service over an in-memory storage.
type Env struct {
	Conf       *core.Config
	Logger     core.Logger
	Storage    *memkv.Storage
	DB         *localstore.DB
	Validate   *validator.Validate
	Translator ut.Translator
	MailSvc    core.EmailService

	UserRepo     user.Repository
	MaterialRepo material.Repository

	UserSvc        *user.Service
	MaterialSvc    *material.Service
	ProjectSvc     *project.Service
	CitationSvc    *citation.Service
	SupervisionSvc *supervision.Service
	MessageSvc     *message.Service
}

func NewEnv(t *testing.T) *Env {
	t.Helper()

	conf := core.NewTestConfig()
	logger := logsvc.NewNopLogger()
	validate, translator := shared.NewValidate()

	storage := memkv.New(conf.Storage.Origin)
	db := localstore.New(storage, logger)
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	emailsvc.ResetSentMessages()

	env := &Env{
		Conf:         conf,
		Logger:       logger,
		Storage:      storage,
		DB:           db,
		Validate:     validate,
		Translator:   translator,
		MailSvc:      mailSvc,
		UserRepo:     localstore.NewUserRepository(db),
		MaterialRepo: localstore.NewMaterialRepository(db),
	}
	env.UserSvc = user.NewService(env.UserRepo, validate)
	env.MaterialSvc = material.NewService(env.MaterialRepo, validate)
	env.SupervisionSvc = supervision.NewService(localstore.NewSupervisionRepository(db), validate)
	env.ProjectSvc = project.NewService(localstore.NewProjectRepository(db), env.SupervisionSvc, validate)
	env.CitationSvc = citation.NewService(localstore.NewCitationRepository(db), env.SupervisionSvc, validate)
	env.MessageSvc = message.NewService(localstore.NewMessageRepository(db), env.UserSvc, env.SupervisionSvc, mailSvc, validate)
	return env
}

// CreateUser stores a user directly, bypassing validation. An empty pwd leaves the user without password.
func CreateUser(t *testing.T, repo user.Repository, name, email, pwd, role string, createdAt ...time.Time) user.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateMaterial(t *testing.T, svc *material.Service, title, typ, uploadedBy string, keywords ...string) material.Material {
	t.Helper()
	m, err := svc.Create(context.Background(), uploadedBy, material.NewMaterial{
		Title:    title,
		Author:   "Jane Author",
		Type:     typ,
		Year:     "2021",
		Keywords: keywords,
	})
	if err != nil {
		t.Fatalf("CreateMaterial() failed: %v", err)
	}
	return m
}

func CreateProject(t *testing.T, svc *project.Service, studentID, title string) project.Project {
	t.Helper()
	p, err := svc.Create(context.Background(), studentID, project.NewProject{Title: title, Description: title + " description"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	return p
}

func CreateSupervision(t *testing.T, svc *supervision.Service, studentID, supervisorID, status string) supervision.Supervision {
	t.Helper()
	s, err := svc.Create(context.Background(), supervision.NewSupervision{StudentID: studentID, SupervisorID: supervisorID, Status: status})
	if err != nil {
		t.Fatalf("CreateSupervision() failed: %v", err)
	}
	return s
}
