package broadcast

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
)

// maxMessageLen is the usual carrier cap on a concatenated SMS body.
const maxMessageLen = 1600

// Request contains the criteria and content of one broadcast.
// Empty Year/Department mean "all years"/"all departments".
type Request struct {
	Year       string `json:"year"`
	Department string `json:"department"`
	Message    string `json:"message" validate:"required"`
}

func (r *Request) Validate() error {
	r.Year = core.CleanString(r.Year)
	r.Department = core.CleanString(r.Department)
	r.Message = core.CleanString(r.Message)
	if err := core.Validate.Struct(r); err != nil {
		return err
	}
	if len(r.Message) > maxMessageLen {
		return core.NewValidationError(
			errors.New("message too long"),
			core.FieldError{Field: "message", Error: fmt.Sprintf("must be at most %d characters", maxMessageLen)},
		)
	}
	return nil
}

// Failure records one recipient the gateway could not deliver to.
type Failure struct {
	Phone   string `json:"phone_number"`
	Student string `json:"student_name"`
	Reason  string `json:"reason"`
}

// Result summarises a finished broadcast.
type Result struct {
	ID       string    `json:"id"`
	Matched  int       `json:"matched_count"`
	Sent     int       `json:"sent_count"`
	Failures []Failure `json:"failures"`
	SentAt   time.Time `json:"sent_at"` // UTC
}
