package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"poster-studio/models"
)

type GenerationLogRepository struct {
	col *mongo.Collection
}

func NewGenerationLogRepository(db *mongo.Database) *GenerationLogRepository {
	return &GenerationLogRepository{col: db.Collection("generation_logs")}
}

func (r *GenerationLogRepository) Insert(ctx context.Context, log models.GenerationLog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}
