package main

import (
	"fmt"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core/broadcast"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
)

func (cli *commandLine) broadcast(year, department, message string) error {
	req := broadcast.Request{Year: year, Department: department, Message: message}
	if err := req.Validate(); err != nil {
		return err
	}

	svc := broadcast.NewService(contact.NewService(cli.repo), cli.sms, cli.logger)
	res, err := svc.Run(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "broadcast %s: %d matched, %d sent, %d failed\n", res.ID, res.Matched, res.Sent, len(res.Failures))
	for _, f := range res.Failures {
		fmt.Fprintf(cli.out, "  failed: %s (parent of %s): %s\n", f.Phone, f.Student, f.Reason)
	}
	return nil
}
