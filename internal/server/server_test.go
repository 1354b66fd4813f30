package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanischmitbelu.com/gamification/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:             "test",
		Port:               "0",
		AllowedOrigins:     "http://localhost:3000",
		Locale:             "de",
		AppName:            "SpanischMitBelu",
		ShareURL:           "https://app.spanischmitbelu.com",
		StreakTick:         time.Millisecond,
		StreakMaxSteps:     25,
		BadgeRevealDelay:   time.Millisecond,
		ResultDuration:     30 * time.Millisecond,
		ResultSteps:        30,
		RankingRevealDelay: time.Millisecond,
		RankingTopN:        5,
	}
}

func newTestServer(w io.Writer) *Server {
	gin.SetMode(gin.TestMode)
	logger := log.NewWithOptions(w, log.Options{Level: log.DebugLevel})
	return NewServer(testConfig(), logger, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
}

func TestRoutes(t *testing.T) {
	var buf bytes.Buffer
	h := newTestServer(&buf).Handler()

	tests := []struct {
		method, target string
		want           int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/streak?days=7", http.StatusOK},
		{http.MethodGet, "/api/ranking", http.StatusOK},
		{http.MethodGet, "/api/ranking/rules", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.want, w.Code, tt.target)
	}
	assert.Contains(t, buf.String(), "week=42")
}

func TestRankingSubtitleUsesSeedWeek(t *testing.T) {
	var buf bytes.Buffer
	h := newTestServer(&buf).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ranking", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Subtitle string `json:"subtitle"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Semana 42 · 2026", body.Data.Subtitle)
}

func TestCORSPreflight(t *testing.T) {
	var buf bytes.Buffer
	h := newTestServer(&buf).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/results", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunStopsWithContext(t *testing.T) {
	srv := newTestServer(io.Discard).HTTPServer()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.Addr = ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, srv, log.NewWithOptions(io.Discard, log.Options{}))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
