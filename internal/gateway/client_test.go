package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avypatel/finsight/internal/common"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{BaseURL: server.URL})
	return server, client
}

func TestGenerateSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "Skip the bike this month."}]}}
			]
		}`))
	})

	text, err := client.Generate(context.Background(), "test-key", "Strict financing advice.")
	require.NoError(t, err)

	assert.Equal(t, "Skip the bike this month.", text)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "Strict financing advice.", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateInvalidKeyStatuses(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden} {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})

			_, err := client.Generate(context.Background(), "bad-key", "prompt")
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidAPIKey))
		})
	}
}

func TestGenerateServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), "key", "prompt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrInvalidAPIKey), "a 500 is a transport failure, not a key problem")
}

func TestGenerateMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "empty candidates", body: `{"candidates": []}`},
		{name: "candidate without parts", body: `{"candidates": [{"content": {"parts": []}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Generate(context.Background(), "key", "prompt")
			require.Error(t, err)
			assert.False(t, errors.Is(err, common.ErrInvalidAPIKey))
		})
	}
}

func TestGenerateTimeout(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Generate(context.Background(), "key", "prompt")
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}
