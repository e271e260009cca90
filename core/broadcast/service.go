package broadcast

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
)

type Service struct {
	contacts *contact.Service
	sms      core.SMSService
	logger   core.Logger
}

func NewService(contacts *contact.Service, sms core.SMSService, logger core.Logger) *Service {
	return &Service{
		contacts: contacts,
		sms:      sms,
		logger:   logger,
	}
}

// Run selects the contacts matching the request's filters and sends them the message.
func (svc *Service) Run(req Request) (Result, error) {
	selected, err := svc.contacts.Filter(contact.QueryFilter{Year: req.Year, Department: req.Department})
	if err != nil {
		return Result{}, errors.Wrap(err, "filtering contacts")
	}
	return svc.Send(selected, req.Message), nil
}

// Send delivers the message to every selected contact, one gateway call per record,
// in selection order. A failed send is recorded on the Result and never stops the
// rest of the batch.
func (svc *Service) Send(selected []contact.Contact, message string) Result {
	res := Result{
		ID:       uuid.New().String(),
		Matched:  len(selected),
		Failures: make([]Failure, 0),
	}

	for _, c := range selected {
		msg := core.SMS{To: c.Phone, Student: c.Student, Body: message}
		if err := svc.sms.Send(msg); err != nil {
			svc.logger.Warn(
				"broadcast: send failed",
				map[string]interface{}{"broadcast": res.ID, "to": c.Phone},
				err,
			)
			res.Failures = append(res.Failures, Failure{Phone: c.Phone, Student: c.Student, Reason: err.Error()})
			continue
		}
		res.Sent++
	}
	res.SentAt = time.Now().UTC()

	svc.logger.Info(
		"broadcast: finished",
		map[string]interface{}{"broadcast": res.ID, "matched": res.Matched, "sent": res.Sent, "failed": len(res.Failures)},
	)
	return res
}
