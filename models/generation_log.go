package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationLog stores one copy-generation call (system monitoring
// purpose). Poster images themselves are never persisted.
// Collection: generation_logs
type GenerationLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Style           string             `bson:"style" json:"style"`
	ModelName       string             `bson:"model_name" json:"model_name"`
	ModelVersion    string             `bson:"model_version" json:"model_version"`
	InputTokens     int64              `bson:"input_tokens" json:"input_tokens"`
	OutputTokens    int64              `bson:"output_tokens" json:"output_tokens"`
	TotalTokens     int64              `bson:"total_tokens" json:"total_tokens"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	Success         bool               `bson:"success" json:"success"`
	ErrorMessage    *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	ResponseExcerpt string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
