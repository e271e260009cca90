package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	repo   contact.Repository
	sms    core.SMSService
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  broadcast -message MESSAGE [-year YEAR] [-department DEPT] - text an announcement to matching parents")
	fmt.Fprintln(cli.out, "  checkroster - load every roster file and report what was found")
	fmt.Fprintln(cli.out, "  hashpassword - hash an admin password for the *_ADMINPASSWORDHASH env var")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	broadcastCmd := flag.NewFlagSet("broadcast", flag.ExitOnError)
	broadcastMsg := broadcastCmd.String("message", "", "The announcement text.")
	broadcastYear := broadcastCmd.String("year", "", "Only parents of students in this year, eg. \"1st Year\". All years when omitted.")
	broadcastDept := broadcastCmd.String("department", "", "Only parents of students in this department, eg. \"CSE\". All departments when omitted.")

	switch args[1] {
	case "broadcast":
		if err := broadcastCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *broadcastMsg == "" {
			broadcastCmd.Usage()
			return errHelp
		}
		return cli.broadcast(*broadcastYear, *broadcastDept, *broadcastMsg)
	case "checkroster":
		return cli.checkRoster()
	case "hashpassword":
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
