package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
)

func Test_login(t *testing.T) {
	srv, _, _ := initServer(t, &recordingSender{})

	tests := []struct {
		name     string
		body     []byte
		wantCode int
		wantErr  interface{}
	}{
		{
			name:     "empty body",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantErr:  map[string]string{"username": "this field is required", "password": "this field is required"},
		},
		{
			name:     "unknown username",
			body:     marshallObj(t, LoginRequest{Username: "root", Password: testAdminPassword}),
			wantCode: http.StatusBadRequest,
			wantErr:  httpErr{Error: "authentication failed"},
		},
		{
			name:     "wrong password",
			body:     marshallObj(t, LoginRequest{Username: "admin", Password: "nope"}),
			wantCode: http.StatusBadRequest,
			wantErr:  httpErr{Error: "authentication failed"},
		},
		{
			name:     "username is case-insensitive",
			body:     marshallObj(t, LoginRequest{Username: "  Admin ", Password: testAdminPassword}),
			wantCode: http.StatusOK,
		},
		{
			name:     "valid credentials",
			body:     marshallObj(t, LoginRequest{Username: "admin", Password: testAdminPassword}),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/login", tt.body)
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				assert.JSONEq(t, string(marshallObj(t, tt.wantErr)), rec.Body.String())
				return
			}

			var data struct {
				Token string `json:"token"`
			}
			unmarshallBody(t, rec, &data)
			assert.NotEmpty(t, data.Token)

			// the token must open the gated endpoints
			req, rec = newAuthRequest(http.MethodGet, "/v1/contacts", data.Token)
			srv.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func Test_authenticate_emptyHashNeverMatches(t *testing.T) {
	initConf(t)
	core.Conf.Admin.PasswordHash = ""

	if _, err := authenticate("admin", ""); err == nil {
		t.Error("authenticate() should fail when no admin password hash is configured")
	}
}
