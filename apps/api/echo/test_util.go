package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/broadcast"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
	logsvc "github.com/NishanthKarthikeyan/college-broadcast-system/services/logger"
	rosterstore "github.com/NishanthKarthikeyan/college-broadcast-system/storage/roster"
	testutil "github.com/NishanthKarthikeyan/college-broadcast-system/tests"
)

const testAdminPassword = "s3cret"

type httpErr struct {
	Error string `json:"error"`
}

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func initConf(t *testing.T) {
	t.Helper()

	core.Conf.Debug = false
	core.Conf.TestMode = true
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("initConf() failed: %v", err)
	}
	core.Conf.Admin.Username = "admin"
	core.Conf.Admin.PasswordHash = string(hash)
}

// initServer wires a Server over the standard sample roster fixture.
func initServer(t *testing.T, sender core.SMSService) (Server, *rosterstore.Store, string) {
	t.Helper()
	initConf(t)

	dir := testutil.SampleRoster(t)
	store, err := rosterstore.NewStore(rosterstore.NewRepository(dir, 2))
	if err != nil {
		t.Fatalf("initServer() failed: %v", err)
	}

	contactSvc := contact.NewService(store)
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0), core.Conf)
	srv := NewServer(&Options{
		Addr:           "localhost:0",
		DisableReqLogs: true,
		ContactSvc:     contactSvc,
		BroadcastSvc:   broadcast.NewService(contactSvc, sender, logger),
		Roster:         store,
		Logger:         logger,
	})
	return srv, store, dir
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T) string {
	t.Helper()
	token, err := GenerateToken(GetAdminClaims())
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func unmarshallBody(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarshallBody(%q) failed: %v", rec.Body.String(), err)
	}
}
