package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shipsched/internal/carriers"
	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/metrics"
	"shipsched/internal/utils"
)

// Extractor turns one candidate document into a result.
type Extractor interface {
	Extract(ctx context.Context, company, url string, q models.ScheduleQuery) (models.ScheduleResult, error)
}

// FareLookup returns the stored fare for a route or "" when unknown.
type FareLookup interface {
	LookupFare(ctx context.Context, company, departure, destination string) (string, error)
}

// ScheduleService asks every carrier for one sailing and concatenates the
// answers in carrier order.
type ScheduleService struct {
	Carriers    []carriers.Carrier
	Extractor   Extractor
	Fares       FareLookup
	Concurrency int
	Log         *zap.Logger
}

// Recommend validates q before touching any carrier. A carrier failure only
// removes that carrier from the results; the error return is reserved for
// bad input.
func (s *ScheduleService) Recommend(ctx context.Context, q models.ScheduleQuery) (models.Recommendation, error) {
	if err := q.Validate(); err != nil {
		return models.Recommendation{}, err
	}
	started := time.Now()
	defer func() { metrics.RecommendDuration.Observe(time.Since(started).Seconds()) }()

	limit := s.Concurrency
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]models.CarrierOutcome, len(s.Carriers))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, c := range s.Carriers {
		g.Go(func() error {
			// the request's recovery middleware cannot see this goroutine
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = s.panicked(ctx, c, r)
				}
			}()
			outcomes[i] = s.runCarrier(ctx, c, q)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]models.ScheduleResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Matched() {
			results = append(results, *o.Result)
		}
	}
	utils.LogEvent(s.logger(), utils.RequestIDFrom(ctx), "schedules", "recommend",
		fmt.Sprintf("%s -> %s: %d of %d carriers matched", q.DeparturePort, q.DestinationPort, len(results), len(outcomes)))

	return models.Recommendation{Results: results, Carriers: outcomes}, nil
}

func (s *ScheduleService) runCarrier(ctx context.Context, c carriers.Carrier, q models.ScheduleQuery) (out models.CarrierOutcome) {
	log := s.logger().With(zap.String("request_id", utils.RequestIDFrom(ctx)), zap.String("carrier", c.Name()))
	out = models.CarrierOutcome{Carrier: c.Name(), State: models.StateNotAttempted}
	defer func() { metrics.CarrierOutcomes.WithLabelValues(c.Name(), string(out.State)).Inc() }()

	if a, ok := c.(carriers.Applicable); ok && !a.Applies(q) {
		log.Info("carrier skipped for destination", zap.String("destination", q.DestinationPort))
		return out
	}

	metrics.CarriersActive.Inc()
	defer metrics.CarriersActive.Dec()

	links, err := c.Discover(ctx, q)
	if err != nil {
		kind := domain.FailureKind(err)
		metrics.PipelineFailures.WithLabelValues(c.Name(), kind).Inc()
		log.Warn("link discovery failed", zap.String("kind", kind), zap.Error(err))
		out.State = models.StateNoLinks
		out.Error = err.Error()
		return out
	}
	out.State = models.StateLinksFetched
	out.Links = len(links)
	if len(links) == 0 {
		log.Info("no candidate documents")
		out.State = models.StateNoLinks
		return out
	}

	out.State = models.StateExtractionAttempted
	resolver, direct := c.(carriers.Resolver)
	for _, link := range links {
		if ctx.Err() != nil {
			out.Error = ctx.Err().Error()
			break
		}

		var res models.ScheduleResult
		if direct {
			res, err = resolver.Resolve(ctx, link, q)
		} else {
			res, err = s.Extractor.Extract(ctx, c.Name(), link, q)
		}
		if err != nil {
			out.Attempts = append(out.Attempts, failedAttempt(link, err))
			kind := domain.FailureKind(err)
			metrics.PipelineFailures.WithLabelValues(c.Name(), kind).Inc()
			log.Info("candidate rejected", zap.String("url", link), zap.String("kind", kind), zap.Error(err))
			continue
		}

		res.Company = c.Name()
		res.Fare = s.lookupFare(ctx, log, c.Name(), q)
		out.Attempts = append(out.Attempts, models.URLAttempt{URL: link, Outcome: string(models.StateMatched)})
		out.Result = &res
		out.State = models.StateMatched
		log.Info("carrier matched", zap.String("url", link), zap.String("vessel", res.Vessel))
		return out
	}

	out.State = models.StateNoMatch
	return out
}

func (s *ScheduleService) lookupFare(ctx context.Context, log *zap.Logger, company string, q models.ScheduleQuery) string {
	if s.Fares == nil {
		return ""
	}
	fare, err := s.Fares.LookupFare(ctx, company, q.DeparturePort, q.DestinationPort)
	if err != nil {
		log.Warn("fare lookup failed", zap.Error(err))
		return ""
	}
	return fare
}

func (s *ScheduleService) panicked(ctx context.Context, c carriers.Carrier, r any) models.CarrierOutcome {
	s.logger().Error("carrier panicked",
		zap.String("request_id", utils.RequestIDFrom(ctx)),
		zap.String("carrier", c.Name()),
		zap.Any("panic", r),
		zap.Stack("stack"),
	)
	metrics.PipelineFailures.WithLabelValues(c.Name(), "Panic").Inc()
	return models.CarrierOutcome{
		Carrier: c.Name(),
		State:   models.StateNoMatch,
		Error:   fmt.Sprintf("panic: %v", r),
	}
}

func failedAttempt(link string, err error) models.URLAttempt {
	a := models.URLAttempt{URL: link, Outcome: domain.FailureKind(err), Error: err.Error()}
	if r, ok := domain.AsModelReply(err); ok {
		a.RawResponse = r.RawResponse
	}
	return a
}

func (s *ScheduleService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
