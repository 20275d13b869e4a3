package models

import (
	"strings"
	"time"

	"shipsched/internal/domain"
)

// ScheduleQuery is one sailing lookup. At least one of ETD/ETA must be set.
type ScheduleQuery struct {
	DeparturePort   string
	DestinationPort string
	ETD             *time.Time
	ETA             *time.Time
}

func (q ScheduleQuery) Validate() error {
	if strings.TrimSpace(q.DestinationPort) == "" {
		return domain.ValidationError{Field: "destination_port", Msg: "destination_port is required"}
	}
	if q.ETD == nil && q.ETA == nil {
		return domain.ValidationError{Field: "etd_date", Msg: "either etd_date or eta_date must be given"}
	}
	return nil
}

// BaseDate is the date the model should look closest to: ETD wins over ETA.
func (q ScheduleQuery) BaseDate() time.Time {
	if q.ETD != nil {
		return *q.ETD
	}
	if q.ETA != nil {
		return *q.ETA
	}
	return time.Time{}
}

// ScheduleResult is one carrier's selected sailing.
type ScheduleResult struct {
	Company     string `json:"company"`
	Vessel      string `json:"vessel"`
	Voyage      string `json:"voyage,omitempty"`
	ETD         string `json:"etd"`
	ETA         string `json:"eta"`
	Fare        string `json:"fare"`
	Service     string `json:"service,omitempty"`
	ScheduleURL string `json:"schedule_url"`
	RawResponse string `json:"raw_response,omitempty"`
	Error       string `json:"error,omitempty"`
}

// FeedbackRecord is user feedback on a returned schedule. Append-only.
type FeedbackRecord struct {
	URL      string `json:"url"`
	ETD      string `json:"etd"`
	ETA      string `json:"eta"`
	Feedback string `json:"feedback"`
}

// FeedbackPending marks audit rows nobody has reviewed yet.
const FeedbackPending = "pending"

// AuditEntry is one row of the extraction audit log.
type AuditEntry struct {
	Timestamp   time.Time
	URL         string
	Departure   string
	Destination string
	InputDate   string
	ETD         string
	ETA         string
	Vessel      string
	Voyage      string
	Company     string
	Feedback    string
}
