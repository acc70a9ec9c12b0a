package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habrdigest/habrdigest/pkg/config"
)

func TestMessenger_Send(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"chat_id":                  r.PostForm.Get("chat_id"),
			"text":                     r.PostForm.Get("text"),
			"disable_web_page_preview": r.PostForm.Get("disable_web_page_preview"),
		}
		w.Write([]byte(`{"ok":true}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	m := NewMessenger(config.TelegramConfig{
		Token:   "123456:test-token",
		APIURL:  server.URL,
		Timeout: 5 * time.Second,
	})

	err := m.Send(context.Background(), 987654321, "📰 Дайджест по теме: Go")
	require.NoError(t, err)

	assert.Equal(t, "/bot123456:test-token/sendMessage", gotPath)
	assert.Equal(t, "987654321", gotForm["chat_id"])
	assert.Equal(t, "📰 Дайджест по теме: Go", gotForm["text"])
	assert.Equal(t, "true", gotForm["disable_web_page_preview"])
}

func TestMessenger_SendErrors(t *testing.T) {
	t.Run("api error includes body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"ok":false,"description":"Forbidden: bot was blocked by the user"}`)) //nolint:errcheck // test server
		}))
		defer server.Close()

		m := NewMessenger(config.TelegramConfig{
			Token:   "123456:test-token",
			APIURL:  server.URL,
			Timeout: 5 * time.Second,
		})

		err := m.Send(context.Background(), 42, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "blocked by the user")
	})

	t.Run("empty token", func(t *testing.T) {
		m := NewMessenger(config.TelegramConfig{Timeout: time.Second})
		err := m.Send(context.Background(), 42, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "misconfigured")
	})

	t.Run("empty text", func(t *testing.T) {
		m := NewMessenger(config.TelegramConfig{Token: "t", Timeout: time.Second})
		err := m.Send(context.Background(), 42, "")
		assert.Error(t, err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		m := NewMessenger(config.TelegramConfig{
			Token:   "123456:test-token",
			APIURL:  "http://127.0.0.1:1",
			Timeout: time.Second,
		})
		err := m.Send(context.Background(), 42, "hello")
		assert.Error(t, err)
	})
}
