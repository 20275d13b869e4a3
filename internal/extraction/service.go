package extraction

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shipsched/internal/document"
	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/llm"
	"shipsched/internal/metrics"
	"shipsched/internal/utils"
)

// Fetcher downloads a document and hands back a cleanup for the temp file.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, func(), error)
}

// AuditAppender records every successfully parsed selection.
type AuditAppender interface {
	Append(entry models.AuditEntry) error
}

type Service struct {
	fetcher Fetcher
	text    document.TextExtractor
	model   llm.Client
	audit   AuditAppender
	budget  int
	log     *zap.Logger
	now     func() time.Time
}

func NewService(fetcher Fetcher, text document.TextExtractor, model llm.Client, audit AuditAppender, budget int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if budget <= 0 {
		budget = document.DefaultCharBudget
	}
	return &Service{
		fetcher: fetcher,
		text:    text,
		model:   model,
		audit:   audit,
		budget:  budget,
		log:     log,
		now:     time.Now,
	}
}

// Extract runs one document through fetch, candidate selection and one model
// call. Errors are FetchError, ExtractionError, *ModelReplyError or the model
// transport error; none of them is fatal for the caller's other documents.
func (s *Service) Extract(ctx context.Context, company, url string, q models.ScheduleQuery) (models.ScheduleResult, error) {
	requestID := utils.RequestIDFrom(ctx)

	path, cleanup, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return models.ScheduleResult{}, err
	}
	defer cleanup()

	lines, err := s.text.Lines(path)
	if err != nil {
		var e domain.ExtractionError
		if errors.As(err, &e) {
			e.URL = url
			return models.ScheduleResult{}, e
		}
		return models.ScheduleResult{}, domain.ExtractionError{URL: url, Kind: domain.ExtractionUnreadable, Err: err}
	}

	aliases := document.AliasesFor(q.DestinationPort)
	candidates := document.SelectCandidates(lines, aliases, s.budget)
	if candidates == "" {
		return models.ScheduleResult{}, domain.ExtractionError{URL: url, Kind: domain.ExtractionNoCandidates}
	}
	s.log.Debug("candidate text",
		zap.String("request_id", requestID),
		zap.String("url", url),
		zap.Int("lines", len(lines)),
		zap.Int("chars", len(candidates)),
	)

	base := q.BaseDate()
	prompt := BuildSelectionPrompt(candidates, q.DeparturePort, q.DestinationPort, aliases, base)

	started := time.Now()
	reply, err := s.model.Complete(ctx, SystemPrompt, prompt)
	metrics.LLMCallDuration.WithLabelValues("selection").Observe(time.Since(started).Seconds())
	if err != nil {
		return models.ScheduleResult{}, err
	}

	fields, rerr := ParseReply(reply)
	if rerr != nil {
		return models.ScheduleResult{}, rerr
	}

	entry := models.AuditEntry{
		Timestamp:   s.now(),
		URL:         url,
		Departure:   q.DeparturePort,
		Destination: q.DestinationPort,
		InputDate:   utils.FormatDate(base),
		ETD:         fields.ETD,
		ETA:         fields.ETA,
		Vessel:      fields.Vessel,
		Voyage:      fields.Voyage,
		Company:     company,
		Feedback:    models.FeedbackPending,
	}
	if s.audit != nil {
		if err := s.audit.Append(entry); err != nil {
			s.log.Warn("audit append failed",
				zap.String("request_id", requestID),
				zap.String("url", url),
				zap.Error(err),
			)
		}
	}

	return models.ScheduleResult{
		Company:     company,
		Vessel:      fields.Vessel,
		Voyage:      fields.Voyage,
		ETD:         fields.ETD,
		ETA:         fields.ETA,
		ScheduleURL: url,
		RawResponse: reply,
	}, nil
}
