package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
)

type newUserArgs struct {
	email, name, role, department, studentID, staffID, pwd string
}

// addUser updates or creates a user.User
func (cli *commandLine) addUser(ctx context.Context, args newUserArgs) error {
	svc := cli.app.UserSvc

	usr, err := svc.GetByEmail(ctx, args.email)
	switch {
	case err == nil:
		usr, err = svc.Update(ctx, usr.ID, user.UpdateUser{
			Name:            args.name,
			Role:            args.role,
			Department:      args.department,
			StudentID:       args.studentID,
			StaffID:         args.staffID,
			Password:        args.pwd,
			PasswordConfirm: args.pwd,
		})
		if err != nil {
			return errors.Wrap(err, "updating user")
		}
		_, _ = fmt.Fprintf(cli.out, "updated %s (%s)\n", usr.Email, usr.ID)
	case errors.Is(err, user.ErrNotFound):
		usr, err = svc.Create(ctx, user.NewUser{
			Name:            args.name,
			Email:           args.email,
			Password:        args.pwd,
			PasswordConfirm: args.pwd,
			Role:            args.role,
			Department:      args.department,
			StudentID:       args.studentID,
			StaffID:         args.staffID,
		})
		if err != nil {
			return errors.Wrap(err, "creating user")
		}
		_, _ = fmt.Fprintf(cli.out, "created %s (%s)\n", usr.Email, usr.ID)
	default:
		return errors.Wrap(err, "finding user by email")
	}
	return nil
}

func (cli *commandLine) whoami() error {
	usr, ok := cli.session.CurrentUser()
	if !ok {
		_, _ = fmt.Fprintln(cli.out, "not signed in")
		return nil
	}
	_, _ = fmt.Fprintf(cli.out, "%s <%s> %s\n", usr.Name, usr.Email, usr.Role)
	return nil
}

// describe renders validation errors as one line per field.
func (cli *commandLine) describe(err error) string {
	return core.DescribeError(err, cli.app.Translator)
}
