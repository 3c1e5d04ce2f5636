package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

func newTestManager() *NetworkManager {
	cfg := &models.MConfig{
		Name:     "test",
		LogLevel: "ERROR",
		Network:  models.MNetworkConfig{RequestTimeout: 5, UserAgent: "test-agent"},
	}
	return NewNetworkManager(cfg, logger.NewLogger(cfg.LogLevel, "test"))
}

// -----------------------------------------------------------------------------

func TestGet(t *testing.T) {
	var gotAgent, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	nm := newTestManager()
	body, err := nm.Get(server.URL, map[string]string{"interval": "1m", "range": "1d"})
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, string(body))
	assert.Equal(t, "test-agent", gotAgent)
	assert.Equal(t, "interval=1m&range=1d", gotQuery)
}

func TestGetBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	nm := newTestManager()
	_, err := nm.Get(server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	nm := newTestManager()
	_, err := nm.Get(server.URL, nil)
	assert.Error(t, err)
}
