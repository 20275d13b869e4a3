package carriers

import (
	"context"
	"strings"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

const onePageURL = "https://jp.one-line.com/ja/schedules/export"

// ONE lists export PDFs per region on a single page; the region label is part
// of each link's text.
type ONE struct {
	classifier RegionClassifier
	pages      PageRenderer
	wait       WaitConfig
	regions    RegionTable
	pageURL    string
}

func NewONE(classifier RegionClassifier, pages PageRenderer, wait WaitConfig) *ONE {
	return &ONE{
		classifier: classifier,
		pages:      pages,
		wait:       wait,
		regions:    ONERegions,
		pageURL:    onePageURL,
	}
}

func (c *ONE) Name() string { return "ONE" }

func (c *ONE) Discover(ctx context.Context, q models.ScheduleQuery) ([]string, error) {
	code, err := c.classifier.Classify(ctx, c.Name(), q.DestinationPort, c.regions.Codes())
	if err != nil {
		return nil, err
	}
	region, _ := c.regions.Lookup(code)

	anchors, err := WaitForAnchors(ctx, c.pages, Page{URL: c.pageURL}, c.wait, func(a Anchor) bool {
		return hasPDFSuffix(a) && strings.Contains(a.Text, region.Label)
	})
	if err != nil {
		return nil, domain.DiscoveryError{Carrier: c.Name(), Msg: "export page unavailable", Err: err}
	}

	links := make([]string, 0, len(anchors))
	for _, a := range anchors {
		links = append(links, resolveLink(c.pageURL, a.Href))
	}
	return links, nil
}
