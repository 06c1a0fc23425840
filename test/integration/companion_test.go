//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func registerClient(t *testing.T, serverURL string, username string) *http.Client {
	t.Helper()

	client := newClientWithJar(t)
	resp := postJSON(t, client, serverURL+"/api/auth/register", map[string]any{
		"username": username, "password": "p@ss", "name": "Test User",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return client
}

func TestRemindersLifecycle(t *testing.T) {
	server := newTestServer(t)
	client := registerClient(t, server.URL, "alice")

	at := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	created := postJSON(t, client, server.URL+"/api/reminders", map[string]any{
		"title": "Take medication", "time": at, "recurring": true,
	})
	require.Equal(t, http.StatusOK, created.StatusCode)

	var createdBody struct {
		Data struct {
			Reminder struct {
				ID        int64 `json:"id"`
				Completed bool  `json:"completed"`
			} `json:"reminder"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, created), &createdBody))
	require.Positive(t, createdBody.Data.Reminder.ID)
	require.False(t, createdBody.Data.Reminder.Completed)

	completeURL := fmt.Sprintf("%s/api/reminders/%d/complete", server.URL, createdBody.Data.Reminder.ID)
	req, err := http.NewRequest(http.MethodPut, completeURL, nil)
	require.NoError(t, err)
	completeResp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = completeResp.Body.Close() })
	require.Equal(t, http.StatusOK, completeResp.StatusCode)

	listResp, err := client.Get(server.URL + "/api/reminders")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listResp.Body.Close() })

	var listBody struct {
		Data struct {
			Reminders []struct {
				Title     string `json:"title"`
				Completed bool   `json:"completed"`
			} `json:"reminders"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, listResp), &listBody))
	require.Len(t, listBody.Data.Reminders, 1)
	require.True(t, listBody.Data.Reminders[0].Completed)
}

func TestReminderOwnershipIsolation(t *testing.T) {
	server := newTestServer(t)
	alice := registerClient(t, server.URL, "alice")
	bob := registerClient(t, server.URL, "bob")

	at := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	created := postJSON(t, alice, server.URL+"/api/reminders", map[string]any{
		"title": "Call the doctor", "time": at,
	})
	require.Equal(t, http.StatusOK, created.StatusCode)

	var createdBody struct {
		Data struct {
			Reminder struct {
				ID int64 `json:"id"`
			} `json:"reminder"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, created), &createdBody))

	// Bob cannot complete Alice's reminder; it looks like it does not exist.
	completeURL := fmt.Sprintf("%s/api/reminders/%d/complete", server.URL, createdBody.Data.Reminder.ID)
	req, err := http.NewRequest(http.MethodPut, completeURL, nil)
	require.NoError(t, err)
	resp, err := bob.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Bob's reminder list stays empty.
	listResp, err := bob.Get(server.URL + "/api/reminders")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listResp.Body.Close() })
	require.NotContains(t, string(readBody(t, listResp)), "Call the doctor")
}

func TestEmergencyContacts(t *testing.T) {
	server := newTestServer(t)
	client := registerClient(t, server.URL, "alice")

	created := postJSON(t, client, server.URL+"/api/emergency-contacts", map[string]any{
		"name": "Carol", "phone": "555-0101", "relationship": "daughter",
	})
	require.Equal(t, http.StatusOK, created.StatusCode)

	missing := postJSON(t, client, server.URL+"/api/emergency-contacts", map[string]any{
		"name": "Nameless",
	})
	require.Equal(t, http.StatusBadRequest, missing.StatusCode)

	listResp, err := client.Get(server.URL + "/api/emergency-contacts")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listResp.Body.Close() })

	body := string(readBody(t, listResp))
	require.Contains(t, body, "Carol")
	require.Contains(t, body, "daughter")
}

func TestChatHistoryOrdering(t *testing.T) {
	server := newTestServer(t)
	client := registerClient(t, server.URL, "alice")

	for i, content := range []string{"hello", "how are you", "goodbye"} {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		resp := postJSON(t, client, server.URL+"/api/chat/history", map[string]any{
			"role": role, "content": content,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	histResp, err := client.Get(server.URL + "/api/chat/history")
	require.NoError(t, err)
	t.Cleanup(func() { _ = histResp.Body.Close() })

	var histBody struct {
		Data struct {
			History []struct {
				Content string `json:"content"`
			} `json:"history"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, histResp), &histBody))
	require.Len(t, histBody.Data.History, 3)
	require.Equal(t, "hello", histBody.Data.History[0].Content)
	require.Equal(t, "goodbye", histBody.Data.History[2].Content)
}
