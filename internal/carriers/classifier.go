package carriers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"shipsched/internal/cache"
	"shipsched/internal/domain"
	"shipsched/internal/llm"
	"shipsched/internal/metrics"
	"shipsched/internal/utils"
)

// Classifier asks the model to pick one category and rejects anything else.
type Classifier struct {
	model llm.Client
	cache cache.RegionCache
	log   *zap.Logger
}

func NewClassifier(model llm.Client, regionCache cache.RegionCache, log *zap.Logger) *Classifier {
	if regionCache == nil {
		regionCache = cache.NewMemoryRegionCache()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{model: model, cache: regionCache, log: log}
}

func (c *Classifier) Classify(ctx context.Context, carrier, destination string, categories []string) (string, error) {
	if region, ok := c.cache.Get(ctx, carrier, destination); ok && contains(categories, region) {
		return region, nil
	}

	started := time.Now()
	reply, err := c.model.Complete(ctx, "", classificationPrompt(carrier, destination, categories))
	metrics.LLMCallDuration.WithLabelValues("classification").Observe(time.Since(started).Seconds())
	if err != nil {
		return "", domain.ClassificationError{Carrier: carrier, Err: err}
	}

	region := normalizeCategory(reply)
	utils.LogEvent(c.log, utils.RequestIDFrom(ctx), "carriers", "classify", fmt.Sprintf("%s: %q -> %s", carrier, destination, region))
	if !contains(categories, region) {
		return "", domain.ClassificationError{Carrier: carrier, Reply: reply}
	}

	c.cache.Set(ctx, carrier, destination, region)
	return region, nil
}

func classificationPrompt(carrier, destination string, categories []string) string {
	quoted := make([]string, len(categories))
	for i, cat := range categories {
		quoted[i] = `"` + cat + `"`
	}
	return fmt.Sprintf(
		"Which region category of %s's export schedule PDFs does the destination %q belong to?\n"+
			"Answer with exactly ONE entry from the list below, in English, with no other text:\n[%s]\n",
		carrier, destination, strings.Join(quoted, ", "),
	)
}

func normalizeCategory(reply string) string {
	return strings.Trim(strings.ToUpper(strings.TrimSpace(reply)), `"`)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
