package rosterstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
)

// Roster files carry these columns (in any order). A contact's year comes from
// which file it was read from, never from a column.
const (
	columnStudent    = "student_name"
	columnDepartment = "department"
	columnPhone      = "phone_number"
)

// Repository reads parent contacts from one CSV file per academic year.
// Every call re-reads the source files; wrap it in a Store to cache a snapshot.
type Repository struct {
	dir   string
	years int
}

var _ contact.Repository = (*Repository)(nil)

func NewRepository(dir string, years int) *Repository {
	return &Repository{dir: dir, years: years}
}

// FileName returns the roster file name for year n, eg. "1st_year_parents.csv".
func FileName(n int) string {
	return fmt.Sprintf("%d%s_year_parents.csv", n, contact.OrdinalSuffix(n))
}

// AllContacts loads every configured year file, in year then row order.
func (repo *Repository) AllContacts() ([]contact.Contact, error) {
	all := make([]contact.Contact, 0)
	for n := 1; n <= repo.years; n++ {
		contacts, err := readFile(filepath.Join(repo.dir, FileName(n)), contact.YearLabel(n))
		if err != nil {
			return nil, err
		}
		all = append(all, contacts...)
	}
	return all, nil
}

func readFile(path, year string) ([]contact.Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, &LoadError{File: path, Err: errors.Wrap(err, "reading header")}
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}

	var contacts []contact.Contact
	for row := 1; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{File: path, Row: row, Err: err}
		}
		c := contact.Contact{
			Student:    core.CleanString(rec[cols.student]),
			Year:       year,
			Department: core.CleanString(rec[cols.department]),
			Phone:      core.CleanString(rec[cols.phone]),
		}
		if err := c.Validate(); err != nil {
			return nil, &LoadError{File: path, Row: row, Err: err}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

type columns struct {
	student, department, phone int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{student: -1, department: -1, phone: -1}
	for i, name := range header {
		switch core.CleanString(name, true /* lower */) {
		case columnStudent:
			cols.student = i
		case columnDepartment:
			cols.department = i
		case columnPhone:
			cols.phone = i
		}
	}
	for name, idx := range map[string]int{
		columnStudent:    cols.student,
		columnDepartment: cols.department,
		columnPhone:      cols.phone,
	} {
		if idx < 0 {
			return cols, errors.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}
