package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	logsvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/logger"
	smssvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/sms"
	rosterstore "github.com/NishanthKarthikeyan/college-broadcast-system/storage/roster"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger = logsvc.NewConsoleLogger(std, core.Conf)

	// start CLI
	cli := commandLine{
		repo:   rosterstore.NewRepository(core.Conf.RosterDir, core.Conf.RosterYears),
		sms:    smssvc.NewConsoleService(),
		logger: logger,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err))
		}
		os.Exit(1)
	}
}
