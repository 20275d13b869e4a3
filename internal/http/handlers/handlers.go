package handlers

import (
	"context"

	"shipsched/internal/domain/models"
	"shipsched/internal/services"
)

type Recommender interface {
	Recommend(ctx context.Context, q models.ScheduleQuery) (models.Recommendation, error)
}

type FeedbackRecorder interface {
	Record(ctx context.Context, rec models.FeedbackRecord) error
}

type SheetGenerator interface {
	GenerateScheduleSheet(requestID string, req services.SheetRequest) ([]byte, string, error)
}

// ModelStatus describes the configured completion backend for /api/env-check.
type ModelStatus struct {
	Provider string
	APIKey   string
}

// Handlers carries the services behind the HTTP endpoints.
type Handlers struct {
	Schedules Recommender
	Feedback  FeedbackRecorder
	Docs      SheetGenerator
	Model     ModelStatus
}
