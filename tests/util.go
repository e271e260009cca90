package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RosterHeader is the standard roster column order used by fixtures; loaders
// must not depend on it.
var RosterHeader = []string{"student_name", "department", "phone_number"}

// WriteRosterFile writes a CSV roster file with the standard header and returns its path.
func WriteRosterFile(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(RosterHeader, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("WriteRosterFile() failed: %v", err)
	}
	return path
}

// SampleRoster writes the standard two-year fixture into a temp dir and returns it:
// 1st Year has two CSE rows and one ECE row, 2nd Year has one CSE row.
func SampleRoster(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteRosterFile(t, dir, "1st_year_parents.csv",
		[]string{"Anil Kumar", "CSE", "9876500001"},
		[]string{"Bhavya Reddy", "ECE", "9876500002"},
		[]string{"Chetan Rao", "CSE", "9876500003"},
	)
	WriteRosterFile(t, dir, "2nd_year_parents.csv",
		[]string{"Divya Nair", "CSE", "9876500004"},
	)
	return dir
}
