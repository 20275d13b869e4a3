package repositories

import (
	"time"

	"shipsched/internal/domain/models"
)

var feedbackHeader = []string{"url", "etd", "eta", "feedback", "timestamp"}

// FeedbackRepository stores user verdicts next to the audit log. Rows are
// only ever appended.
type FeedbackRepository struct {
	log csvLog
	now func() time.Time
}

func NewFeedbackRepository(path string) *FeedbackRepository {
	return &FeedbackRepository{log: csvLog{path: path, header: feedbackHeader}, now: time.Now}
}

func (r *FeedbackRepository) Append(rec models.FeedbackRecord) error {
	return r.log.appendRow([]string{rec.URL, rec.ETD, rec.ETA, rec.Feedback, r.now().Format(time.RFC3339)})
}
