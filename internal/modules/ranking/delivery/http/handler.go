package http

import (
	"github.com/gin-gonic/gin"

	"spanischmitbelu.com/gamification/internal/modules/ranking/dto"
	rankingService "spanischmitbelu.com/gamification/internal/modules/ranking/service"
	"spanischmitbelu.com/gamification/pkg/response"
)

type RankingHandler struct {
	service rankingService.RankingService
}

func NewRankingHandler(service rankingService.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

func (h *RankingHandler) GetPage(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindingError(c, err)
		return
	}

	page, err := h.service.GetPage(c.Request.Context(), query.Tab, query.ExpandedWeek)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Data(c, page)
}

func (h *RankingHandler) GetRules(c *gin.Context) {
	response.Data(c, h.service.GetRules())
}
