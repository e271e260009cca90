package main

import "fmt"

// checkRoster loads every configured roster file with the same strict policy as
// the servers, so bad data is caught from the terminal before anyone broadcasts.
func (cli *commandLine) checkRoster() error {
	contacts, err := cli.repo.AllContacts()
	if err != nil {
		return err
	}

	perYear := make(map[string]int, 4)
	years := make([]string, 0, 4)
	for _, c := range contacts {
		if _, seen := perYear[c.Year]; !seen {
			years = append(years, c.Year)
		}
		perYear[c.Year]++
	}

	fmt.Fprintf(cli.out, "roster OK: %d contacts\n", len(contacts))
	for _, year := range years {
		fmt.Fprintf(cli.out, "  %s: %d\n", year, perYear[year])
	}
	return nil
}
