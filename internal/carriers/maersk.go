package carriers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/utils"
)

const maerskDefaultBase = "https://api.maersk.com"

type cityCode struct {
	Country string
	City    string
}

var maerskOrigins = map[string]cityCode{
	"Tokyo":    {"JP", "Tokyo"},
	"Shanghai": {"CN", "Shanghai"},
}

var maerskDestinations = map[string]cityCode{
	"Los Angeles": {"US", "Los Angeles"},
	"Long Beach":  {"US", "Long Beach"},
}

// Maersk answers from its ocean products API instead of a PDF. Discover
// returns the API request as the only link; Resolve performs it.
type Maersk struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewMaersk(apiKey, baseURL string, timeout time.Duration) *Maersk {
	if baseURL == "" {
		baseURL = maerskDefaultBase
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Maersk{
		client:  &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Maersk) Name() string { return "Maersk" }

func (c *Maersk) Discover(_ context.Context, q models.ScheduleQuery) ([]string, error) {
	if c.apiKey == "" {
		return nil, nil
	}
	origin, ok := lookupCity(maerskOrigins, q.DeparturePort)
	if !ok {
		return nil, nil
	}
	dest, ok := lookupCity(maerskDestinations, q.DestinationPort)
	if !ok {
		return nil, nil
	}

	params := url.Values{
		"vesselOperatorCarrierCode":      {"MAEU"},
		"collectionOriginCountryCode":    {origin.Country},
		"collectionOriginCityName":       {origin.City},
		"deliveryDestinationCountryCode": {dest.Country},
		"deliveryDestinationCityName":    {dest.City},
	}
	return []string{c.baseURL + "/products/ocean-products?" + params.Encode()}, nil
}

type maerskResponse struct {
	Schedules []maerskSchedule `json:"schedules"`
}

type maerskSchedule struct {
	VesselName    string `json:"vesselName"`
	DepartureDate string `json:"departureDate"`
	ArrivalDate   string `json:"arrivalDate"`
	ServiceName   string `json:"serviceName"`
}

// Resolve keeps the sailing departing closest to the query's base date.
func (c *Maersk) Resolve(ctx context.Context, link string, q models.ScheduleQuery) (models.ScheduleResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return models.ScheduleResult{}, domain.FetchError{URL: link, Err: err}
	}
	req.Header.Set("Consumer-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.ScheduleResult{}, domain.FetchError{URL: link, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ScheduleResult{}, domain.FetchError{URL: link, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ScheduleResult{}, domain.FetchError{URL: link, Err: err}
	}
	var data maerskResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.ScheduleResult{}, domain.ExtractionError{URL: link, Kind: domain.ExtractionUnreadable, Err: fmt.Errorf("decode schedules: %w", err)}
	}

	best, ok := closestSailing(data.Schedules, q.BaseDate())
	if !ok {
		return models.ScheduleResult{}, domain.ExtractionError{URL: link, Kind: domain.ExtractionNoCandidates}
	}
	return models.ScheduleResult{
		Company:     c.Name(),
		Vessel:      best.VesselName,
		ETD:         monthDay(best.DepartureDate),
		ETA:         monthDay(best.ArrivalDate),
		Service:     best.ServiceName,
		ScheduleURL: link,
	}, nil
}

func closestSailing(schedules []maerskSchedule, base time.Time) (maerskSchedule, bool) {
	var best maerskSchedule
	var bestGap time.Duration
	found := false
	for _, s := range schedules {
		if strings.TrimSpace(s.VesselName) == "" {
			continue
		}
		gap := time.Duration(1<<63 - 1)
		if d, ok := apiDate(s.DepartureDate); ok {
			gap = d.Sub(base)
			if gap < 0 {
				gap = -gap
			}
		}
		if !found || gap < bestGap {
			best, bestGap, found = s, gap, true
		}
	}
	return best, found
}

func apiDate(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := utils.ParseDate(s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func monthDay(s string) string {
	if t, ok := apiDate(s); ok {
		return utils.FormatMonthDay(t)
	}
	return s
}

func lookupCity(m map[string]cityCode, name string) (cityCode, bool) {
	name = strings.TrimSpace(name)
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return cityCode{}, false
}
