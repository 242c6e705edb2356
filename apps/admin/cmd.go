package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/unirepo/apps/shared"
	"github.com/trezcool/unirepo/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app     *shared.App
	session *session.Manager
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  adduser -email EMAIL -name NAME -role student|staff|admin [-department DEPT] [-studentId ID] [-staffId ID] - create or update a user")
	_, _ = fmt.Fprintln(cli.out, "  resetpassword -email EMAIL - reset user's password")
	_, _ = fmt.Fprintln(cli.out, "  seed [-fake N] [-uploader EMAIL] - fill empty partitions with demo data, plus N fake materials")
	_, _ = fmt.Fprintln(cli.out, "  export -out FILE [-search QUERY] [-type TYPE] - export materials to an Excel workbook")
	_, _ = fmt.Fprintln(cli.out, "  login -email EMAIL -role ROLE - sign in on this storage origin")
	_, _ = fmt.Fprintln(cli.out, "  logout - sign out")
	_, _ = fmt.Fprintln(cli.out, "  whoami - print the signed in user")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run goose migrations (postgres storage only)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserEmail := addUserCmd.String("email", "", "The user's email. The password will be prompted next.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserRole := addUserCmd.String("role", "", "One of student, staff or admin.")
	addUserDept := addUserCmd.String("department", "", "The user's department.")
	addUserStudentID := addUserCmd.String("studentId", "", "The student's matriculation number.")
	addUserStaffID := addUserCmd.String("staffId", "", "The staff number.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFake := seedCmd.Int("fake", 0, "Number of fake materials to add.")
	seedUploader := seedCmd.String("uploader", "admin", "Uploader of the fake materials.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOut := exportCmd.String("out", "", "Path of the workbook to write.")
	exportSearch := exportCmd.String("search", "", "Only export materials matching this query.")
	exportType := exportCmd.String("type", "", "Only export materials of this type.")

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The user's email. The password will be prompted next.")
	loginRole := loginCmd.String("role", "", "The role to sign in as.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserEmail == "" || *addUserName == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(ctx, newUserArgs{
			email:      *addUserEmail,
			name:       *addUserName,
			role:       *addUserRole,
			department: *addUserDept,
			studentID:  *addUserStudentID,
			staffID:    *addUserStaffID,
			pwd:        pwd,
		})

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(ctx, *resetPasswordEmail, pwd)

	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(ctx, *seedFake, *seedUploader)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(ctx, *exportOut, *exportSearch, *exportType)

	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" || *loginRole == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		_, err = cli.session.Login(ctx, *loginEmail, pwd, *loginRole)
		return err

	case "logout":
		return cli.session.Logout(ctx)

	case "whoami":
		return cli.whoami()

	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	_, _ = fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	_, _ = fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
