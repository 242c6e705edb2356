package main

import (
	"github.com/trezcool/goose"

	"github.com/trezcool/unirepo/apps"
	"github.com/trezcool/unirepo/storage/kv/postgres"
)

var (
	gooseRunFunc = goose.RunFS // mockable

	errNotPostgres = apps.NewArgumentError("migrate requires the postgres storage engine")
)

func (cli *commandLine) migrate(args []string) error {
	s, ok := cli.app.Storage.(*pgkv.Storage)
	if !ok {
		return errNotPostgres
	}

	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], s.DB(), pgkv.MigrationsFS, pgkv.MigrationsDir, arguments...)
}
