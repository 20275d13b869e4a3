package repositories

import (
	"time"

	"shipsched/internal/domain/models"
)

var auditHeader = []string{"timestamp", "url", "departure", "destination", "input_date", "etd", "eta", "vessel", "voyage", "company", "feedback"}

// AuditLogRepository keeps one CSV row per parsed model selection.
type AuditLogRepository struct {
	log csvLog
}

func NewAuditLogRepository(path string) *AuditLogRepository {
	return &AuditLogRepository{log: csvLog{path: path, header: auditHeader}}
}

func (r *AuditLogRepository) Path() string { return r.log.path }

func (r *AuditLogRepository) Append(e models.AuditEntry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	feedback := e.Feedback
	if feedback == "" {
		feedback = models.FeedbackPending
	}
	return r.log.appendRow([]string{
		ts.Format(time.RFC3339),
		e.URL,
		e.Departure,
		e.Destination,
		e.InputDate,
		e.ETD,
		e.ETA,
		e.Vessel,
		e.Voyage,
		e.Company,
		feedback,
	})
}
