package carriers

import (
	"context"
	"strings"
	"time"

	"shipsched/internal/domain/models"
	"shipsched/internal/utils"
)

// COSCO publishes dated attachment URLs; nothing is scraped, candidate URLs
// are generated for the most recent days.
type COSCO struct {
	classifier RegionClassifier
	regions    RegionTable
	lookback   int
	now        func() time.Time
}

func NewCOSCO(classifier RegionClassifier, lookbackDays int, now func() time.Time) *COSCO {
	if lookbackDays <= 0 {
		lookbackDays = 3
	}
	if now == nil {
		now = time.Now
	}
	return &COSCO{classifier: classifier, regions: COSCORegions, lookback: lookbackDays, now: now}
}

func (c *COSCO) Name() string { return "COSCO" }

func (c *COSCO) Discover(ctx context.Context, q models.ScheduleQuery) ([]string, error) {
	code, err := c.classifier.Classify(ctx, c.Name(), q.DestinationPort, c.regions.Codes())
	if err != nil {
		return nil, err
	}
	region, _ := c.regions.Lookup(code)
	return expandDates(region.Templates, c.now(), c.lookback), nil
}

// expandDates fills {DATE} with YYYYMMDD for today and the days before it,
// newest first, template by template.
func expandDates(templates []string, today time.Time, days int) []string {
	var out []string
	for _, tpl := range templates {
		for d := 0; d < days; d++ {
			out = append(out, strings.ReplaceAll(tpl, "{DATE}", utils.FormatCompactDate(today.AddDate(0, 0, -d))))
		}
	}
	return out
}
