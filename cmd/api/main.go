package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"streamgearhub/cmd/api/router"
	"streamgearhub/cmd/internal/logger"
	"streamgearhub/config"
	_ "streamgearhub/docs" // swag will generate this package
)

// @title           StreamGearHub API
// @version         1.0
// @description     API for the StreamGearHub content site: posts, reviews, guides, streamer setups and the curated gear feed
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	r := router.New()

	// The site frontend is served from a different origin than this API.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.SiteURL, "http://localhost:3000"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})

	srv := &http.Server{
		Addr:    ":8080",
		Handler: c.Handler(r),
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
