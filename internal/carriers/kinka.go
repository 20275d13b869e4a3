package carriers

import (
	"context"
	"strings"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

const kinkaPageURL = "https://www.kinka-agency.com/asp/newsitem.asp?nw_id=54"

// KINKA only runs the Shanghai service and posts one schedule PDF.
type KINKA struct {
	pages   PageRenderer
	wait    WaitConfig
	pageURL string
}

func NewKINKA(pages PageRenderer, wait WaitConfig) *KINKA {
	return &KINKA{pages: pages, wait: wait, pageURL: kinkaPageURL}
}

func (c *KINKA) Name() string { return "KINKA" }

func (c *KINKA) Applies(q models.ScheduleQuery) bool {
	dest := strings.ToLower(q.DestinationPort)
	return strings.Contains(dest, "上海") || strings.Contains(dest, "shanghai")
}

func (c *KINKA) Discover(ctx context.Context, q models.ScheduleQuery) ([]string, error) {
	if !c.Applies(q) {
		return nil, nil
	}
	anchors, err := WaitForAnchors(ctx, c.pages, Page{URL: c.pageURL}, c.wait, func(a Anchor) bool {
		return strings.Contains(strings.ToLower(a.Href), ".pdf")
	})
	if err != nil {
		return nil, domain.DiscoveryError{Carrier: c.Name(), Msg: "agency page unavailable", Err: err}
	}
	if len(anchors) == 0 {
		return nil, nil
	}
	return []string{resolveLink(c.pageURL, anchors[0].Href)}, nil
}
