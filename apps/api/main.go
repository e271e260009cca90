package main

import (
	"log"
	"os"

	echoapi "github.com/NishanthKarthikeyan/college-broadcast-system/apps/api/echo"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/broadcast"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
	logsvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/logger"
	smssvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/sms"
	rosterstore "github.com/NishanthKarthikeyan/college-broadcast-system/storage/roster"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.RollbarToken != "" && !core.Conf.Debug {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	} else {
		logger = logsvc.NewConsoleLogger(std, core.Conf)
	}

	// load the roster; refuse to start on bad data
	repo := rosterstore.NewRepository(core.Conf.RosterDir, core.Conf.RosterYears)
	store, err := rosterstore.NewStore(repo)
	if err != nil {
		logger.Fatal("loading roster", err)
	}

	// set up services
	contactSvc := contact.NewService(store)
	var smsSvc core.SMSService = smssvc.NewConsoleService() // swap for a carrier gateway in PROD
	broadcastSvc := broadcast.NewService(contactSvc, smsSvc, logger)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:         core.Conf.Server.Addr,
			ContactSvc:   contactSvc,
			BroadcastSvc: broadcastSvc,
			Roster:       store,
			Logger:       logger,
		},
	)
	app.Start()
}
