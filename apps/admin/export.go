package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/services/export"
)

func (cli *commandLine) export(ctx context.Context, out, search, typ string) error {
	materials, err := cli.app.MaterialSvc.Filter(ctx, material.QueryFilter{Search: search, Type: typ})
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}

	buf, err := export.MaterialsWorkbook(materials)
	if err != nil {
		return errors.Wrap(err, "building workbook")
	}
	if err = os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	_, _ = fmt.Fprintf(cli.out, "exported %d materials to %s\n", len(materials), out)
	return nil
}
