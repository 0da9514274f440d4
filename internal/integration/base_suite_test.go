package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"

	"github.com/stretchr/testify/suite"

	"github.com/ekinveldet/cinema-booking/internal/app"
)

const (
	adminEmail    = "admin@cinego.example"
	adminPassword = "Adm1nPass!"
)

// BaseSuite starts the full application against a fresh in-memory store and
// exposes cookie-jar clients, so every test talks to the real router with
// real sessions.
type BaseSuite struct {
	suite.Suite
	server *httptest.Server
}

func (s *BaseSuite) SetupTest() {
	cfg := app.Config{
		Env: "test",
		Admin: app.AdminConfig{
			Name:     "Admin",
			Email:    adminEmail,
			Password: adminPassword,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testApp, err := app.New(cfg, logger)
	s.Require().NoError(err)

	s.server = httptest.NewServer(testApp.Routes())
}

func (s *BaseSuite) TearDownTest() {
	s.server.Close()
}

func (s *BaseSuite) newClient() *http.Client {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	return &http.Client{Jar: jar}
}

func (s *BaseSuite) do(client *http.Client, method, path string, body any) (*http.Response, []byte) {
	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	s.Require().NoError(err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	s.Require().NoError(err)

	return res, data
}

func (s *BaseSuite) login(client *http.Client, email, password string) {
	res, _ := s.do(client, http.MethodPost, "/sessions", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, res.StatusCode)
}

func (s *BaseSuite) register(client *http.Client, name, email, password string) {
	res, _ := s.do(client, http.MethodPost, "/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusCreated, res.StatusCode)
}
