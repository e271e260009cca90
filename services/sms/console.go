package smssvc

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
)

var (
	SentMessages = make([]core.SMS, 0)
	mu           sync.Mutex
)

// consoleService stands in for a real SMS gateway: every well-formed message is
// written to the terminal as one human-readable line and "delivered". Swapping
// in a carrier gateway means providing another core.SMSService, nothing more.
type consoleService struct {
	out        io.Writer
	bodyPrefix string
}

var _ core.SMSService = (*consoleService)(nil)

func NewConsoleService() core.SMSService {
	return &consoleService{
		out:        os.Stdout,
		bodyPrefix: "[" + core.Conf.AppName + "] ",
	}
}

func (svc consoleService) Send(msg core.SMS) error {
	if !msg.HasRecipient() {
		return core.ErrSMSNoRecipient
	}
	if !msg.HasContent() {
		return core.ErrSMSNoContent
	}

	_, _ = fmt.Fprintf(
		svc.out,
		"%s SMS to %s (parent of %s): %s%s\n",
		time.Now().Format(time.RFC1123Z), msg.To, msg.Student, svc.bodyPrefix, msg.Body,
	)

	mu.Lock()
	SentMessages = append(SentMessages, msg)
	mu.Unlock()
	return nil
}

type consoleServiceMock struct {
	consoleService
}

// NewConsoleServiceMock records messages without terminal output, for tests.
func NewConsoleServiceMock() core.SMSService {
	return &consoleServiceMock{
		consoleService: consoleService{
			out:        io.Discard,
			bodyPrefix: "[" + core.Conf.AppName + "] ",
		},
	}
}

// ClearSentMessages resets the sent-message capture between tests.
func ClearSentMessages() {
	mu.Lock()
	SentMessages = SentMessages[:0]
	mu.Unlock()
}
