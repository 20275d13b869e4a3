package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/utils"
)

// FeedbackStore appends feedback records.
type FeedbackStore interface {
	Append(rec models.FeedbackRecord) error
}

type FeedbackService struct {
	Store FeedbackStore
	Log   *zap.Logger
}

func (s FeedbackService) Record(ctx context.Context, rec models.FeedbackRecord) error {
	rec.URL = strings.TrimSpace(rec.URL)
	rec.Feedback = strings.TrimSpace(rec.Feedback)
	if rec.URL == "" {
		return domain.ValidationError{Field: "url", Msg: "url is required"}
	}
	if rec.Feedback == "" {
		return domain.ValidationError{Field: "feedback", Msg: "feedback is required"}
	}

	if s.Log != nil {
		utils.LogEvent(s.Log, utils.RequestIDFrom(ctx), "feedback", "record",
			"url="+rec.URL+" etd="+rec.ETD+" eta="+rec.ETA+" feedback="+rec.Feedback)
	}
	if err := s.Store.Append(rec); err != nil {
		return domain.InternalError{Msg: "failed to store feedback", Err: err}
	}
	return nil
}
