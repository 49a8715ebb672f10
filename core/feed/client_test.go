package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := NewClient(Config{URL: "https://example.com/feed.json", UserAgent: "test"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("MissingURL", func(t *testing.T) {
		client, err := NewClient(Config{})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestFetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotUA, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{"chrome": []}`))
		}))
		defer srv.Close()

		client, err := NewClient(Config{URL: srv.URL, UserAgent: "Mozilla/5.0 (test)"})
		require.NoError(t, err)

		body, err := client.Fetch(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `{"chrome": []}`, string(body))
		assert.Equal(t, "Mozilla/5.0 (test)", gotUA)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("UpstreamStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "blocked", http.StatusForbidden)
		}))
		defer srv.Close()

		client, err := NewClient(Config{URL: srv.URL})
		require.NoError(t, err)

		body, err := client.Fetch(context.Background())
		assert.Nil(t, body)
		assert.ErrorIs(t, err, ErrUnavailable)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		client, err := NewClient(Config{URL: url, TimeoutSeconds: 1})
		require.NoError(t, err)

		_, err = client.Fetch(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		client, err := NewClient(Config{URL: "http://127.0.0.1:1", RequestsPerMinute: 1})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.Fetch(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
