package main

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"poster-studio/api/router"
	"poster-studio/assets"
	"poster-studio/config"
	"poster-studio/copywriter"
	"poster-studio/db"
	"poster-studio/logger"
	"poster-studio/quota"
	"poster-studio/repositories"
	"poster-studio/services"
)

// @title           Poster Studio API
// @version         1.0
// @description     API for generating localized marketing posters
// @BasePath        /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("failed to load configuration: %v", err)
		return
	}
	logger.Init(cfg.Logging.Level)

	// Fonts are embedded into every poster; refusing to start without
	// them beats rendering posters with broken glyphs.
	fonts, err := assets.LoadFonts(cfg.Fonts.RegularPath, cfg.Fonts.BoldPath)
	if err != nil {
		logger.Log.Errorf("failed to load poster fonts: %v", err)
		return
	}

	ctx := context.Background()
	client, err := copywriter.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Errorf("failed to create generation client: %v", err)
		return
	}

	var database *mongo.Database
	var logRepo *repositories.GenerationLogRepository
	if cfg.Mongo.URI != "" {
		database, err = db.Connect(ctx, cfg.Mongo)
		if err != nil {
			logger.Log.Errorf("failed to connect to MongoDB: %v", err)
			return
		}
		logRepo = repositories.NewGenerationLogRepository(database)
	} else {
		logger.Log.Info("mongo uri not configured, generation logging disabled")
	}

	svc := services.NewPosterService(cfg, client, fonts, logRepo)
	limiter := quota.NewFromConfig(cfg.GenerationQuota)
	handler := router.New(svc, limiter, database)

	logger.Log.Infof("poster studio listening on :%s (model=%s)", cfg.Server.Port, cfg.GeminiModel)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
	}
}
