package services

import (
	"context"
	"errors"
	"testing"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

type memFeedback struct {
	rows []models.FeedbackRecord
	err  error
}

func (m *memFeedback) Append(rec models.FeedbackRecord) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, rec)
	return nil
}

func TestFeedbackServiceRecord(t *testing.T) {
	store := &memFeedback{}
	svc := FeedbackService{Store: store}

	err := svc.Record(context.Background(), models.FeedbackRecord{URL: " https://example.com/a.pdf ", ETD: "05/02", ETA: "05/15", Feedback: "correct"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.rows) != 1 || store.rows[0].URL != "https://example.com/a.pdf" {
		t.Fatalf("unexpected rows: %+v", store.rows)
	}
}

func TestFeedbackServiceValidation(t *testing.T) {
	svc := FeedbackService{Store: &memFeedback{}}
	if err := svc.Record(context.Background(), models.FeedbackRecord{Feedback: "ok"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing url, got %v", err)
	}
	if err := svc.Record(context.Background(), models.FeedbackRecord{URL: "u"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing feedback, got %v", err)
	}
}

func TestFeedbackServiceStoreFailure(t *testing.T) {
	svc := FeedbackService{Store: &memFeedback{err: errors.New("disk full")}}
	err := svc.Record(context.Background(), models.FeedbackRecord{URL: "u", Feedback: "ok"})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
