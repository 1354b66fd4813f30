package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"spanischmitbelu.com/gamification/internal/middleware"
	"spanischmitbelu.com/gamification/internal/modules/result/dto"
	resultService "spanischmitbelu.com/gamification/internal/modules/result/service"
	"spanischmitbelu.com/gamification/pkg/response"
)

type ResultHandler struct {
	service  resultService.ResultService
	upgrader websocket.Upgrader
}

func NewResultHandler(service resultService.ResultService) *ResultHandler {
	return &ResultHandler{
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

func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req dto.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	view, err := h.service.BuildResult(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Data(c, view)
}

// StreamScreen pushes XP counter frames and the ranking reveal. A "set_xp"
// message restarts the counter.
func (h *ResultHandler) StreamScreen(c *gin.Context) {
	var query dto.ScreenQuery
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
	logger := log.With("session", session, "request_id", middleware.RequestID(c), "xp", *query.XP)
	logger.Debug("⚡ Result screen stream opened")

	stream := response.NewStream(conn, logger)
	screen := h.service.NewScreen(*query.XP, func(e resultService.ScreenEvent) {
		stream.Send(dto.ServerMessage{Type: "event", Session: session, Event: resultService.ToEventResponse(e)})
	})
	defer screen.Close()

	screen.Start()

	for {
		var msg dto.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Debug("🔌 Result screen stream closed", "err", err)
			return
		}

		switch msg.Type {
		case "set_xp":
			screen.SetXP(msg.XP)
		default:
			logger.Warn("Unknown screen message", "type", msg.Type)
		}
	}
}
