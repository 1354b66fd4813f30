package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"spanischmitbelu.com/gamification/internal/middleware"
	"spanischmitbelu.com/gamification/internal/modules/streak/dto"
	streakService "spanischmitbelu.com/gamification/internal/modules/streak/service"
	"spanischmitbelu.com/gamification/pkg/response"
)

type StreakHandler struct {
	service  streakService.StreakService
	upgrader websocket.Upgrader
}

func NewStreakHandler(service streakService.StreakService) *StreakHandler {
	return &StreakHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *StreakHandler) GetPopup(c *gin.Context) {
	var query dto.StreakQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindingError(c, err)
		return
	}

	view, err := h.service.GetPopup(c.Request.Context(), *query.Days, query.PreviousDays)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Data(c, view)
}

// StreamPopup animates a popup for the connection's lifetime. The popup is
// shown right away; the client may send show, hide and set_streak messages.
func (h *StreakHandler) StreamPopup(c *gin.Context) {
	var query dto.StreakQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindingError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("Failed to upgrade websocket", "err", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := log.With("session", session, "request_id", middleware.RequestID(c), "days", *query.Days)
	logger.Debug("🔥 Streak popup stream opened")

	stream := response.NewStream(conn, logger)
	popup := h.service.NewPopup(*query.Days, func(e streakService.Event) {
		stream.Send(dto.ServerMessage{Type: "event", Session: session, Event: streakService.ToEventResponse(e)})
	})
	defer popup.Close()

	popup.Show()

	for {
		var msg dto.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Debug("🔌 Streak popup stream closed", "err", err)
			return
		}

		switch msg.Type {
		case "show":
			popup.Show()
		case "hide":
			popup.Hide()
		case "set_streak":
			popup.SetStreak(msg.Days)
		default:
			logger.Warn("Unknown popup message", "type", msg.Type)
		}
	}
}
