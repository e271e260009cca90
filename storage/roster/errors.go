package rosterstore

import "fmt"

// LoadError reports a roster source that could not be loaded. Broadcasts must
// never run on a partially loaded roster, so any LoadError fails the whole load;
// bad rows are never silently skipped.
type LoadError struct {
	File string
	Row  int // 1-based data row; 0 when the file itself failed
	Err  error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("loading roster %s: row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("loading roster %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Cause supports pkg/errors.Cause.
func (e *LoadError) Cause() error { return e.Err }
