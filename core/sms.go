package core

import "github.com/pkg/errors"

// Gateways reject malformed messages with these so a broadcast's sent count
// only ever counts messages that went out.
var (
	ErrSMSNoRecipient = errors.New("sms: message has no recipient")
	ErrSMSNoContent   = errors.New("sms: message has no content")
)

type (
	// SMS is one text message addressed to a single recipient phone number.
	SMS struct {
		To      string // dialable phone number
		Student string // the student whose parent is being contacted
		Body    string
	}

	// SMSService is any service that can deliver text messages.
	// The simulated terminal gateway and a real carrier gateway both satisfy it;
	// a per-message error is the recipient's alone and must not affect the rest
	// of a batch.
	SMSService interface {
		Send(msg SMS) error
	}
)

func (m SMS) HasRecipient() bool { return m.To != "" }
func (m SMS) HasContent() bool   { return m.Body != "" }
