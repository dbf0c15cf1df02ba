package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/tracker/config"
	"github.com/blogem/tracker/logging"
	"github.com/blogem/tracker/models"
)

const seedPassword = "correct horse battery staple"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0", DisplayTimezone: time.UTC},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "tracker.db")},
		Store:    config.StoreConfig{RetentionCap: 200},
		Geolocation: config.GeolocationConfig{
			APIURL:    "http://127.0.0.1:1/json",
			Timeout:   100 * time.Millisecond,
			CacheSize: 16,
			CacheTTL:  time.Minute,
		},
		Auth: config.AuthConfig{
			AdminUsers:   []string{"alice"},
			SeedUsername: "alice",
			SeedPassword: seedPassword,
		},
	}

	a, err := newApp(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	r, err := setupRouter(a)
	require.NoError(t, err)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func login(t *testing.T, client *http.Client, server *httptest.Server, username, password string) *http.Response {
	t.Helper()
	resp, err := client.PostForm(server.URL+"/", url.Values{"username": {username}, "password": {password}})
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"tracker"}`, body(t, resp))
}

func TestProtectedPagesRedirectToLanding(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	for _, path := range []string{"/home", "/weight", "/calories/2025-07", "/admin/requests"} {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestLogin(t *testing.T) {
	server := newTestServer(t)

	resp := login(t, newClient(t), server, "alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid username or password")

	client := newClient(t)
	resp = login(t, client, server, "alice", seedPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/home", resp.Request.URL.Path)
	assert.Contains(t, body(t, resp), "Welcome back, alice")

	resp, err := client.Get(server.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(server.URL + "/home")
	require.NoError(t, err)
	assert.Equal(t, "/", resp.Request.URL.Path)
	resp.Body.Close()
}

func TestLogin_RedirectsToRequestedPage(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, err := client.Get(server.URL + "/calories")
	require.NoError(t, err)
	resp.Body.Close()

	resp = login(t, client, server, "alice", seedPassword)
	assert.Equal(t, "/calories", resp.Request.URL.Path)
	resp.Body.Close()
}

func TestTrackingFlow(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)
	login(t, client, server, "alice", seedPassword).Body.Close()

	resp, err := client.PostForm(server.URL+"/admin/weight", url.Values{"date": {"2025-07-14"}, "weight": {"82.4"}})
	require.NoError(t, err)
	assert.Equal(t, "/admin/weight", resp.Request.URL.Path)
	assert.Contains(t, body(t, resp), "Saved 82.4 kg on 2025-07-14")

	resp, err = client.PostForm(server.URL+"/admin/weight", url.Values{"date": {"2025-07-14"}, "weight": {"81.0"}})
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Weight data already exists")

	resp, err = client.PostForm(server.URL+"/admin/calories", url.Values{"date": {"2025-07-14"}, "calories": {"2150"}})
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Saved 2150 kcal on 2025-07-14")

	resp, err = client.Get(server.URL + "/weight/2025-07")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "July 2025")
	assert.Contains(t, page, "82.4")

	resp, err = client.Get(server.URL + "/calories/july-2025")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "2150")

	resp, err = client.Get(server.URL + "/weight/smarch")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestLog(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	login(t, client, server, "alice", seedPassword).Body.Close()

	resp, err = client.Get(server.URL + "/admin/requests.json")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.RequestRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	resp.Body.Close()

	// GET /, POST / and the redirected GET /home, newest first
	require.Len(t, records, 3)
	assert.Equal(t, "home", records[0].Route)
	assert.Equal(t, http.MethodPost, records[1].Method)
	assert.Equal(t, "landing", records[2].Route)
	for _, r := range records {
		assert.Equal(t, "127.0.0.1", r.IPAddress)
		assert.True(t, r.GeoData.IsLocal())
	}

	resp, err = client.Get(server.URL + "/admin/status")
	require.NoError(t, err)
	var status models.StorageStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.Equal(t, models.StorageTypeMemory, status.StorageType)
	assert.Equal(t, 3, status.MemoryEntries)

	resp, err = client.Get(server.URL + "/admin/requests")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Local Network")

	resp, err = client.Get(server.URL + "/admin/metrics")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "tracker_monitored_requests_total")
}

func TestAdminUsers(t *testing.T) {
	server := newTestServer(t)
	admin := newClient(t)
	login(t, admin, server, "alice", seedPassword).Body.Close()

	resp, err := admin.PostForm(server.URL+"/admin/users", url.Values{"username": {"bob"}, "password": {"password"}, "confirm": {"password"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Password is too weak")

	strong := "violet tractor umbrella 42"
	resp, err = admin.PostForm(server.URL+"/admin/users", url.Values{"username": {"bob"}, "password": {strong}, "confirm": {strong}})
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "User bob added")

	resp, err = admin.PostForm(server.URL+"/admin/users", url.Values{"username": {"bob"}, "password": {strong}, "confirm": {strong}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	bob := newClient(t)
	resp = login(t, bob, server, "bob", strong)
	assert.Contains(t, body(t, resp), "Welcome back, bob")

	resp, err = bob.Get(server.URL + "/admin/requests")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSSODisabled(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/login/sso")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
