// Package carriers discovers candidate schedule documents for each shipping
// line. Every carrier owns its region table and page layout knowledge.
package carriers

import (
	"context"

	"shipsched/internal/domain/models"
)

// Carrier returns the ordered candidate document URLs for a query. An empty
// list without error means the carrier has nothing for this route.
type Carrier interface {
	Name() string
	Discover(ctx context.Context, q models.ScheduleQuery) ([]string, error)
}

// Applicable is implemented by carriers that only serve some destinations.
type Applicable interface {
	Applies(q models.ScheduleQuery) bool
}

// Resolver is implemented by carriers whose links are API calls rather than
// PDFs; the aggregator hands such links back instead of extracting them.
type Resolver interface {
	Resolve(ctx context.Context, link string, q models.ScheduleQuery) (models.ScheduleResult, error)
}

// RegionClassifier maps a destination to one of a closed set of categories.
type RegionClassifier interface {
	Classify(ctx context.Context, carrier, destination string, categories []string) (string, error)
}
