package router

import (
	"comments-service/config"
	"comments-service/handler"
	"comments-service/middleware"
	"comments-service/service"
	"comments-service/youtube"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(cfg *config.Config, events *handler.EventPublisher) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(middleware.PrometheusMiddleware("comments-service"))

	client := youtube.NewClient(cfg.YouTubeAPIKey, cfg.YouTubeAPIBase)
	commentsHandler := handler.NewCommentsHandler(cfg, service.NewCommentService(client), events)

	r.GET("/api/comments", commentsHandler.GetComments)
	r.GET("/api/resolve", commentsHandler.ResolveVideoID)

	// Health check endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
