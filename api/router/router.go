package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"poster-studio/api/handlers"
	_ "poster-studio/docs"
	"poster-studio/quota"
	"poster-studio/services"
)

// New wires the HTTP surface. The returned handler includes the CORS
// wrapper, so callers serve it directly.
func New(svc *services.PosterService, limiter *quota.GenerationQuotaLimiter, database *mongo.Database) http.Handler {
	r := gin.Default()

	// Health check
	r.GET("/health", handlers.HealthHandler(database))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/posters", handlers.GeneratePosterHandler(svc, limiter))
		api.GET("/styles", handlers.ListStylesHandler())
	}

	return cors.Default().Handler(r)
}
