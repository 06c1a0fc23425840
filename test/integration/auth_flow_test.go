//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"testing"

	"github.com/stretchr/testify/require"
)

func newClientWithJar(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestRegisterMeLogoutFlow(t *testing.T) {
	server := newTestServer(t)
	client := newClientWithJar(t)

	registerResp := postJSON(t, client, server.URL+"/api/auth/register", map[string]any{
		"username": "alice",
		"password": "p@ss",
		"name":     "Alice",
		"age":      70,
	})
	require.Equal(t, http.StatusOK, registerResp.StatusCode)

	var hasSessionCookie bool
	for _, c := range registerResp.Cookies() {
		if c.Name == "token" && c.Value != "" {
			hasSessionCookie = true
			require.True(t, c.HttpOnly)
		}
	}
	require.True(t, hasSessionCookie)

	registerBody := readBody(t, registerResp)
	require.NotContains(t, string(registerBody), "password")

	var registered struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				ID       int64  `json:"id"`
				Username string `json:"username"`
				Name     string `json:"name"`
				Age      *int   `json:"age"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(registerBody, &registered))
	require.True(t, registered.Success)
	require.Equal(t, "alice", registered.Data.User.Username)
	require.Equal(t, "Alice", registered.Data.User.Name)
	require.NotNil(t, registered.Data.User.Age)
	require.Equal(t, 70, *registered.Data.User.Age)
	require.Positive(t, registered.Data.User.ID)

	// The cookie from registration authenticates /me.
	meResp, err := client.Get(server.URL + "/api/auth/me")
	require.NoError(t, err)
	t.Cleanup(func() { _ = meResp.Body.Close() })
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	meBody := readBody(t, meResp)
	require.NotContains(t, string(meBody), "password")
	require.Contains(t, string(meBody), `"username":"alice"`)

	// Logout clears the cookie; /me rejects afterwards.
	logoutResp := postJSON(t, client, server.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	meAfter, err := client.Get(server.URL + "/api/auth/me")
	require.NoError(t, err)
	t.Cleanup(func() { _ = meAfter.Body.Close() })
	require.Equal(t, http.StatusUnauthorized, meAfter.StatusCode)
}

func TestDuplicateRegistration(t *testing.T) {
	server := newTestServer(t)

	first := postJSON(t, newClientWithJar(t), server.URL+"/api/auth/register", map[string]any{
		"username": "alice", "password": "one", "name": "Alice",
	})
	require.Equal(t, http.StatusOK, first.StatusCode)

	second := postJSON(t, newClientWithJar(t), server.URL+"/api/auth/register", map[string]any{
		"username": "alice", "password": "two", "name": "Other",
	})
	require.Equal(t, http.StatusBadRequest, second.StatusCode)
	require.Contains(t, string(readBody(t, second)), "ALREADY_EXISTS")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	server := newTestServer(t)

	register := postJSON(t, newClientWithJar(t), server.URL+"/api/auth/register", map[string]any{
		"username": "alice", "password": "p@ss", "name": "Alice",
	})
	require.Equal(t, http.StatusOK, register.StatusCode)

	wrongPassword := postJSON(t, &http.Client{}, server.URL+"/api/auth/login", map[string]any{
		"username": "alice", "password": "wrong",
	})
	unknownUser := postJSON(t, &http.Client{}, server.URL+"/api/auth/login", map[string]any{
		"username": "mallory", "password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, wrongPassword.StatusCode, unknownUser.StatusCode)
	require.Equal(t, readBody(t, wrongPassword), readBody(t, unknownUser))
}

func TestProtectedEndpointRejections(t *testing.T) {
	server := newTestServer(t)

	// No cookie at all.
	bare, err := http.Get(server.URL + "/api/reminders")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bare.Body.Close() })
	require.Equal(t, http.StatusUnauthorized, bare.StatusCode)

	// A tampered cookie rejects differently but just as firmly.
	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/reminders", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "token", Value: "tampered.token.value"})

	tampered, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tampered.Body.Close() })
	require.Equal(t, http.StatusForbidden, tampered.StatusCode)
}

func TestLogoutIsIdempotent(t *testing.T) {
	server := newTestServer(t)

	// No session at all; logout still reports success.
	resp := postJSON(t, &http.Client{}, server.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	again := postJSON(t, &http.Client{}, server.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, again.StatusCode)
}
