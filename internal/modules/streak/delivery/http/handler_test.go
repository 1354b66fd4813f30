package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanischmitbelu.com/gamification/internal/modules/streak/dto"
	streakService "spanischmitbelu.com/gamification/internal/modules/streak/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := streakService.NewStreakService(streakService.Config{
		AppName:  "SpanischMitBelu",
		ShareURL: "https://app.spanischmitbelu.com",
		Popup: streakService.PopupOptions{
			TickInterval: time.Millisecond,
			MaxSteps:     25,
			RevealDelay:  2 * time.Millisecond,
		},
	})
	h := NewStreakHandler(svc)

	r := gin.New()
	r.GET("/api/streak", h.GetPopup)
	r.GET("/api/streak/ws", h.StreamPopup)
	return r
}

func TestGetPopupHandler(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/streak?days=30", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data dto.PopupView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rayo", body.Data.Badge.Label)
	assert.True(t, body.Data.Milestone)
}

func TestGetPopupHandlerValidation(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{"/api/streak", "/api/streak?days=-3", "/api/streak?days=abc"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestStreamPopup(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/streak/ws?days=3"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var session string
	for {
		var msg dto.ServerMessage
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, "event", msg.Type)
		if session == "" {
			session = msg.Session
		}
		assert.Equal(t, session, msg.Session)
		if msg.Event.State == string(streakService.StateRevealed) {
			assert.Equal(t, 3, msg.Event.Displayed)
			break
		}
	}

	require.NoError(t, conn.WriteJSON(dto.ClientMessage{Type: "hide"}))
	var hidden dto.ServerMessage
	require.NoError(t, conn.ReadJSON(&hidden))
	assert.False(t, hidden.Event.Visible)
	assert.Equal(t, string(streakService.StateIdle), hidden.Event.State)
}
