package contact

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
)

// Contact is one parent contact row from the roster: the person to text
// about announcements concerning a student.
// Contacts are immutable once loaded; the roster store rebuilds the whole
// set from its source files instead of mutating records in place.
type Contact struct {
	Student    string `json:"student_name" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Department string `json:"department" validate:"required"`
	Phone      string `json:"phone_number" validate:"required"` // number format is the gateway's business
}

func (c Contact) Validate() error {
	return core.Validate.Struct(c)
}

// QueryFilter narrows a contact set by exact, case-sensitive equality on
// either field. An empty field matches everything; the zero value matches
// every contact.
type QueryFilter struct {
	Year       string `json:"year"`
	Department string `json:"department"`
}

func (f QueryFilter) Match(c Contact) bool {
	if f.Year != "" && c.Year != f.Year {
		return false
	}
	if f.Department != "" && c.Department != f.Department {
		return false
	}
	return true
}

// Filter returns the sub-sequence of contacts matching every present filter
// field, preserving input order. No match is a valid empty result, not an error.
func Filter(contacts []Contact, f QueryFilter) []Contact {
	matched := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if f.Match(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// OrdinalSuffix returns the English ordinal suffix for n ("st", "nd", "rd" or "th").
func OrdinalSuffix(n int) string {
	if r := n % 100; 11 <= r && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// YearLabel returns the categorical label stamped on contacts loaded from
// year n's roster file, eg. "1st Year".
func YearLabel(n int) string {
	return fmt.Sprintf("%d%s Year", n, OrdinalSuffix(n))
}

// SuggestCategory returns the known category closest to val when it is similar
// enough to look like a typo or case mismatch, for "did you mean ..?" hints.
func SuggestCategory(val string, known []string) (string, bool) {
	const minRatio = 0.72

	var best string
	var bestRatio float64
	lval := strings.Split(strings.ToLower(val), "")
	for _, k := range known {
		ratio := difflib.NewMatcher(lval, strings.Split(strings.ToLower(k), "")).QuickRatio()
		if ratio > bestRatio {
			bestRatio, best = ratio, k
		}
	}
	if bestRatio >= minRatio {
		return best, true
	}
	return "", false
}
