package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/handlers"
	"streamgearhub/cmd/api/middleware"
	"streamgearhub/cmd/api/services"
	_ "streamgearhub/docs"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestMetrics())

	wp := wpclient.New()

	// Health check: reports degraded when the CMS is unreachable.
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := wp.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cms": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		gearSvc := services.NewGearService(wp)
		postsSvc := services.NewPostService(wp, gearSvc)
		api.GET("/posts", handlers.ListPostsHandler(postsSvc))
		api.GET("/posts/tag/:tag", handlers.ListPostsByTagHandler(postsSvc))
		api.GET("/posts/:slug", handlers.GetPostHandler(postsSvc))

		reviewsSvc := services.NewReviewService(wp)
		api.GET("/reviews", handlers.ListReviewsHandler(reviewsSvc))
		api.GET("/reviews/:slug", handlers.GetReviewHandler(reviewsSvc))

		guidesSvc := services.NewGuideService(wp, gearSvc)
		api.GET("/guides", handlers.ListGuidesHandler(guidesSvc))
		api.GET("/guides/:slug", handlers.GetGuideHandler(guidesSvc))

		streamersSvc := services.NewStreamerService(wp)
		api.GET("/streamers", handlers.ListStreamersHandler(streamersSvc))
		api.GET("/streamers/:slug", handlers.GetStreamerHandler(streamersSvc))

		api.GET("/gear", handlers.ListGearHandler(gearSvc))

		homeSvc := services.NewHomeService(postsSvc, gearSvc, wp)
		api.GET("/home", handlers.HomeHandler(homeSvc))
	}

	return r
}
