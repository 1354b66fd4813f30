package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spanischmitbelu.com/gamification/internal/bootstrap"
	"spanischmitbelu.com/gamification/internal/config"
	"spanischmitbelu.com/gamification/internal/middleware"
	"spanischmitbelu.com/gamification/pkg/display"

	rankingHttp "spanischmitbelu.com/gamification/internal/modules/ranking/delivery/http"
	rankingRepo "spanischmitbelu.com/gamification/internal/modules/ranking/repository"
	rankingService "spanischmitbelu.com/gamification/internal/modules/ranking/service"

	resultHttp "spanischmitbelu.com/gamification/internal/modules/result/delivery/http"
	resultService "spanischmitbelu.com/gamification/internal/modules/result/service"

	streakHttp "spanischmitbelu.com/gamification/internal/modules/streak/delivery/http"
	streakService "spanischmitbelu.com/gamification/internal/modules/streak/service"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewServer wires every module. now fixes the current week the demo
// leaderboards are seeded for.
func NewServer(cfg *config.Config, logger *log.Logger, now time.Time) *Server {
	formatter := display.NewFormatter(cfg.Locale)

	week := rankingService.WeekOfYear(now)
	fixtures := bootstrap.SeedRanking(week, now)
	logger.Info("📅 Ranking seeded", "week", week, "year", fixtures.Year, "locale", formatter.Locale())

	// Ranking Module
	rankingRepository := rankingRepo.NewRankingRepository(fixtures)
	rankingSvc := rankingService.NewRankingService(rankingRepository, rankingService.Config{
		TopN:      cfg.RankingTopN,
		Formatter: formatter,
	})
	rankingHandler := rankingHttp.NewRankingHandler(rankingSvc)

	// Streak Module
	streakSvc := streakService.NewStreakService(streakService.Config{
		AppName:  cfg.AppName,
		ShareURL: cfg.ShareURL,
		Popup: streakService.PopupOptions{
			TickInterval: cfg.StreakTick,
			MaxSteps:     cfg.StreakMaxSteps,
			RevealDelay:  cfg.BadgeRevealDelay,
		},
	})
	streakHandler := streakHttp.NewStreakHandler(streakSvc)

	// Result Module
	resultSvc := resultService.NewResultService(rankingSvc, resultService.Config{
		Screen: resultService.ScreenOptions{
			Duration:     cfg.ResultDuration,
			Steps:        cfg.ResultSteps,
			RankingDelay: cfg.RankingRevealDelay,
		},
		TopN:      cfg.RankingTopN,
		Formatter: formatter,
	})
	resultHandler := resultHttp.NewResultHandler(resultSvc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	setupCORS(router, cfg.Origins())

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger, "/healthz"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/streak", streakHandler.GetPopup)
		api.GET("/streak/ws", streakHandler.StreamPopup)

		api.POST("/results", resultHandler.CreateResult)
		api.GET("/results/ws", resultHandler.StreamScreen)

		api.GET("/ranking", rankingHandler.GetPage)
		api.GET("/ranking/rules", rankingHandler.GetRules)
	}

	return &Server{
		engine: router,
		cfg:    cfg,
	}
}

// Handler exposes the router, e.g. for an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setupCORS(router *gin.Engine, origins []string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
