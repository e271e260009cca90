package broadcast

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
	smssvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/sms"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// recordingSender captures every message; fails each call n where failEvery divides n.
type recordingSender struct {
	sent      []core.SMS
	calls     int
	failEvery int
}

func (s *recordingSender) Send(msg core.SMS) error {
	s.calls++
	if s.failEvery > 0 && s.calls%s.failEvery == 0 {
		return fmt.Errorf("gateway rejected %s", msg.To)
	}
	s.sent = append(s.sent, msg)
	return nil
}

type fixedRepo []contact.Contact

func (r fixedRepo) AllContacts() ([]contact.Contact, error) { return r, nil }

func makeContacts(n int) []contact.Contact {
	contacts := make([]contact.Contact, 0, n)
	for i := 1; i <= n; i++ {
		contacts = append(contacts, contact.Contact{
			Student:    fmt.Sprintf("Student %d", i),
			Year:       "1st Year",
			Department: "CSE",
			Phone:      fmt.Sprintf("98765%05d", i),
		})
	}
	return contacts
}

func TestService_Send(t *testing.T) {
	contacts := makeContacts(4)
	sender := &recordingSender{}
	svc := NewService(contact.NewService(fixedRepo(contacts)), sender, nopLogger{})

	res := svc.Send(contacts, "PTA meeting on Friday")

	if res.ID == "" {
		t.Error("Send() result has no ID")
	}
	if res.Matched != 4 || res.Sent != 4 || len(res.Failures) != 0 {
		t.Errorf("Send() = matched %d, sent %d, failed %d; want 4, 4, 0", res.Matched, res.Sent, len(res.Failures))
	}
	for i, msg := range sender.sent {
		want := core.SMS{To: contacts[i].Phone, Student: contacts[i].Student, Body: "PTA meeting on Friday"}
		if msg != want {
			t.Errorf("sent[%d] = %v, want %v", i, msg, want)
		}
	}
}

func TestService_Send_neverAbortsBatch(t *testing.T) {
	contacts := makeContacts(9)
	sender := &recordingSender{failEvery: 3} // every third send fails
	svc := NewService(contact.NewService(fixedRepo(contacts)), sender, nopLogger{})

	res := svc.Send(contacts, "Results are out")

	if res.Matched != 9 || res.Sent != 6 {
		t.Errorf("Send() = matched %d, sent %d; want 9, 6", res.Matched, res.Sent)
	}
	if sender.calls != 9 {
		t.Errorf("Send() stopped early: %d gateway calls, want 9", sender.calls)
	}

	wantFailed := []string{contacts[2].Phone, contacts[5].Phone, contacts[8].Phone}
	gotFailed := make([]string, 0, len(res.Failures))
	for _, f := range res.Failures {
		if f.Reason == "" {
			t.Errorf("failure for %s has no reason", f.Phone)
		}
		gotFailed = append(gotFailed, f.Phone)
	}
	if !reflect.DeepEqual(gotFailed, wantFailed) {
		t.Errorf("failed phones = %v, want %v", gotFailed, wantFailed)
	}
}

func TestService_Run(t *testing.T) {
	contacts := []contact.Contact{
		{Student: "Anil Kumar", Year: "1st Year", Department: "CSE", Phone: "9876500001"},
		{Student: "Bhavya Reddy", Year: "1st Year", Department: "ECE", Phone: "9876500002"},
		{Student: "Chetan Rao", Year: "1st Year", Department: "CSE", Phone: "9876500003"},
		{Student: "Divya Nair", Year: "2nd Year", Department: "CSE", Phone: "9876500004"},
	}
	sender := &recordingSender{}
	svc := NewService(contact.NewService(fixedRepo(contacts)), sender, nopLogger{})

	res, err := svc.Run(Request{Year: "1st Year", Department: "CSE", Message: "Fee due"})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Matched != 2 || res.Sent != 2 || len(res.Failures) != 0 {
		t.Errorf("Run() = matched %d, sent %d, failed %d; want 2, 2, 0", res.Matched, res.Sent, len(res.Failures))
	}
	if len(sender.sent) != 2 || sender.sent[0].To != "9876500001" || sender.sent[1].To != "9876500003" {
		t.Errorf("Run() sent to %v, want the two 1st Year CSE parents in order", sender.sent)
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "message only", req: Request{Message: "Holiday tomorrow"}},
		{name: "filters are optional", req: Request{Year: "1st Year", Department: "CSE", Message: "Exam hall change"}},
		{name: "missing message", req: Request{Year: "1st Year"}, wantErr: true},
		{name: "blank message", req: Request{Message: "   "}, wantErr: true},
		{name: "message at the cap", req: Request{Message: strings.Repeat("a", maxMessageLen)}},
		{name: "message over the cap", req: Request{Message: strings.Repeat("a", maxMessageLen+1)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequest_Validate_messageTooLong(t *testing.T) {
	req := Request{Message: strings.Repeat("a", maxMessageLen+1)}

	err := req.Validate()
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("Validate() error = %T, want *core.ValidationError", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "message" {
		t.Errorf("Validate() fields = %v, want one error on message", vErr.Fields)
	}
}

func TestService_Send_blankRecipientIsAFailure(t *testing.T) {
	defer smssvc.ClearSentMessages()

	contacts := makeContacts(2)
	contacts[1].Phone = ""
	svc := NewService(contact.NewService(fixedRepo(contacts)), smssvc.NewConsoleServiceMock(), nopLogger{})

	res := svc.Send(contacts, "Fee due next week")

	if res.Matched != 2 || res.Sent != 1 || len(res.Failures) != 1 {
		t.Fatalf("Send() = matched %d, sent %d, failed %d; want 2, 1, 1", res.Matched, res.Sent, len(res.Failures))
	}
	if res.Failures[0].Student != contacts[1].Student {
		t.Errorf("Failures[0].Student = %q, want %q", res.Failures[0].Student, contacts[1].Student)
	}
	if len(smssvc.SentMessages) != 1 {
		t.Errorf("gateway delivered %d messages, want 1", len(smssvc.SentMessages))
	}
}
