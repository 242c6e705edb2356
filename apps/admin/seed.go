package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/apps"
)

func (cli *commandLine) seed(ctx context.Context, fake int, uploader string) error {
	if fake < 0 {
		return apps.NewArgumentError("-fake must not be negative")
	}

	rep, err := cli.app.Seeder.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "seeding")
	}
	_, _ = fmt.Fprintf(cli.out, "seeded %d users, %d materials, %d projects, %d citations, %d supervisions\n",
		rep.Users, rep.Materials, rep.Projects, rep.Citations, rep.Supervisions)

	if fake > 0 {
		n, err := cli.app.Seeder.Fake(ctx, fake, uploader)
		if err != nil {
			return errors.Wrap(err, "adding fake materials")
		}
		_, _ = fmt.Fprintf(cli.out, "added %d fake materials\n", n)
	}
	return nil
}
