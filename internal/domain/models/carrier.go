package models

// CarrierState tracks how far the pipeline got for one carrier.
type CarrierState string

const (
	StateNotAttempted        CarrierState = "NotAttempted"
	StateLinksFetched        CarrierState = "LinksFetched"
	StateNoLinks             CarrierState = "NoLinks"
	StateExtractionAttempted CarrierState = "ExtractionAttempted"
	StateMatched             CarrierState = "Matched"
	StateNoMatch             CarrierState = "NoMatch"
)

// URLAttempt records what happened to one candidate document.
type URLAttempt struct {
	URL         string `json:"url"`
	Outcome     string `json:"outcome"`
	Error       string `json:"error,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}

// CarrierOutcome is Matched(result) or NoMatch. First match wins: once a
// result is set no later document of the same carrier is consulted.
type CarrierOutcome struct {
	Carrier  string          `json:"carrier"`
	State    CarrierState    `json:"state"`
	Links    int             `json:"links"`
	Attempts []URLAttempt    `json:"attempts,omitempty"`
	Result   *ScheduleResult `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func (o CarrierOutcome) Matched() bool {
	return o.State == StateMatched && o.Result != nil
}

// Recommendation is the aggregated answer for one query.
type Recommendation struct {
	Results  []ScheduleResult `json:"results"`
	Carriers []CarrierOutcome `json:"carriers"`
}
