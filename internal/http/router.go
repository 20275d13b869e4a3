package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	intconfig "shipsched/internal/config"
	h "shipsched/internal/http/handlers"
	"shipsched/internal/http/middleware"
)

func NewRouter(env intconfig.Env, hs *h.Handlers, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log, env.ExposeTraces), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.AuthOptional(env.JWTSecret)

	r.GET("/", h.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// legacy paths
	r.POST("/recommend-shipping", auth, hs.RecommendShipping)
	r.POST("/update-feedback", auth, hs.UpdateFeedback)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/env-check", hs.EnvCheck)
		api.GET("/routes", h.Routes)

		api.POST("/recommend-shipping", auth, hs.RecommendShipping)
		api.POST("/update-feedback", auth, hs.UpdateFeedback)
		api.POST("/schedule-sheet", auth, hs.ScheduleSheetPDF)
	}

	h.SetRouter(r)
	return r
}
