package carriers

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

const (
	shipmentlinkOrigin      = "https://www.shipmentlink.com"
	shipmentlinkInitialPath = "/jp/tvs2/jsp/TVS2_ViewSchedule.jsp?loc="
	shipmentlinkResultPath  = "/loc/tvs2/jsp/TVS2_ViewScheduleResult.jsp"
)

var goWinPDF = regexp.MustCompile(`GoWin\('(.+?\.pdf)'\)`)

// Shipmentlink lists PDFs per departure port; links open through a GoWin()
// javascript call or point at the PDF directly.
type Shipmentlink struct {
	classifier RegionClassifier
	pages      PageRenderer
	wait       WaitConfig
	regions    RegionTable
	departures map[string]string
	origin     string
}

func NewShipmentlink(classifier RegionClassifier, pages PageRenderer, wait WaitConfig) *Shipmentlink {
	return &Shipmentlink{
		classifier: classifier,
		pages:      pages,
		wait:       wait,
		regions:    ShipmentlinkRegions,
		departures: ShipmentlinkDepartures,
		origin:     shipmentlinkOrigin,
	}
}

func (c *Shipmentlink) Name() string { return "Shipmentlink" }

func (c *Shipmentlink) Discover(ctx context.Context, q models.ScheduleQuery) ([]string, error) {
	loc, ok := lookupFold(c.departures, q.DeparturePort)
	if !ok {
		return nil, nil
	}

	code, err := c.classifier.Classify(ctx, c.Name(), q.DestinationPort, c.regions.Codes())
	if err != nil {
		return nil, err
	}
	region, _ := c.regions.Lookup(code)

	initial := c.origin + shipmentlinkInitialPath
	if _, err := c.pages.Render(ctx, Page{URL: initial}); err != nil {
		return nil, domain.DiscoveryError{Carrier: c.Name(), Msg: "schedule entry page unavailable", Err: err}
	}

	result := Page{
		URL: c.origin + shipmentlinkResultPath,
		Query: url.Values{
			"loc":      {loc},
			"type":     {"O"},
			"ctry":     {"JP"},
			"lang":     {"jp"},
			"pick_loc": {"Y"},
		},
		Header: http.Header{
			"Referer": {initial},
			"Origin":  {c.origin},
		},
	}

	dest := strings.ToLower(strings.TrimSpace(q.DestinationPort))
	anchors, err := WaitForAnchors(ctx, c.pages, result, c.wait, func(a Anchor) bool {
		if c.pdfLink(a) == "" {
			return false
		}
		text := strings.ToLower(a.Text)
		if dest != "" && strings.Contains(text, dest) {
			return true
		}
		for _, kw := range region.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, domain.DiscoveryError{Carrier: c.Name(), Msg: "schedule result page unavailable", Err: err}
	}

	links := make([]string, 0, len(anchors))
	for _, a := range anchors {
		link := c.pdfLink(a)
		if unescaped, err := url.PathUnescape(link); err == nil {
			link = unescaped
		}
		links = append(links, link)
	}
	return links, nil
}

func (c *Shipmentlink) pdfLink(a Anchor) string {
	if m := goWinPDF.FindStringSubmatch(a.Href); m != nil {
		return c.origin + m[1]
	}
	if hasPDFSuffix(a) {
		if strings.HasPrefix(a.Href, "/") {
			return c.origin + a.Href
		}
		return a.Href
	}
	return ""
}
