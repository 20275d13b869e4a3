package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

type stubFetcher struct {
	err      error
	fetched  []string
	cleanups int
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, func(), error) {
	f.fetched = append(f.fetched, url)
	if f.err != nil {
		return "", func() {}, f.err
	}
	return "/tmp/schedule-test.pdf", func() { f.cleanups++ }, nil
}

type stubText struct {
	lines []string
	err   error
}

func (s stubText) Lines(string) ([]string, error) { return s.lines, s.err }

type stubModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *stubModel) Complete(_ context.Context, _, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

type memAudit struct{ entries []models.AuditEntry }

func (a *memAudit) Append(e models.AuditEntry) error {
	a.entries = append(a.entries, e)
	return nil
}

var laxLines = []string{
	"EXPORT SCHEDULE",
	"VESSEL X   V.123E",
	"TOKYO      05/02",
	"LOS ANGELES 05/15",
	"REMARKS",
}

func laxQuery() models.ScheduleQuery {
	etd := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	return models.ScheduleQuery{DeparturePort: "Tokyo", DestinationPort: "Los Angeles", ETD: &etd}
}

func TestExtract_LAXScenario(t *testing.T) {
	fetcher := &stubFetcher{}
	model := &stubModel{reply: `{"vessel":"VESSEL X","etd":"05/02","eta":"05/15"}`}
	audit := &memAudit{}
	svc := NewService(fetcher, stubText{lines: laxLines}, model, audit, 0, nil)

	res, err := svc.Extract(context.Background(), "ONE", "https://example.com/lax.pdf", laxQuery())
	require.NoError(t, err)

	assert.Equal(t, "ONE", res.Company)
	assert.Equal(t, "VESSEL X", res.Vessel)
	assert.Equal(t, "05/02", res.ETD)
	assert.Equal(t, "05/15", res.ETA)
	assert.Equal(t, "https://example.com/lax.pdf", res.ScheduleURL)
	assert.Equal(t, 1, fetcher.cleanups)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "LOS ANGELES 05/15")
	assert.NotContains(t, model.prompts[0], "EXPORT SCHEDULE")

	require.Len(t, audit.entries, 1)
	e := audit.entries[0]
	assert.Equal(t, "2025-05-01", e.InputDate)
	assert.Equal(t, "VESSEL X", e.Vessel)
	assert.Equal(t, models.FeedbackPending, e.Feedback)
}

func TestExtract_NoJSONFound(t *testing.T) {
	audit := &memAudit{}
	model := &stubModel{reply: "Sorry, nothing matches."}
	svc := NewService(&stubFetcher{}, stubText{lines: laxLines}, model, audit, 0, nil)

	_, err := svc.Extract(context.Background(), "ONE", "https://example.com/a.pdf", laxQuery())

	rerr, ok := domain.AsModelReply(err)
	require.True(t, ok)
	assert.Equal(t, domain.NoJSONFound, rerr.Kind)
	assert.Equal(t, "Sorry, nothing matches.", rerr.RawResponse)
	assert.Empty(t, audit.entries)
}

func TestExtract_NoCandidatesSkipsModel(t *testing.T) {
	model := &stubModel{}
	svc := NewService(&stubFetcher{}, stubText{lines: []string{"HAMBURG 01/02"}}, model, nil, 0, nil)

	_, err := svc.Extract(context.Background(), "COSCO", "https://example.com/eu.pdf", laxQuery())

	var ee domain.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, domain.ExtractionNoCandidates, ee.Kind)
	assert.Equal(t, "https://example.com/eu.pdf", ee.URL)
	assert.Empty(t, model.prompts)
}

func TestExtract_FetchFailure(t *testing.T) {
	model := &stubModel{}
	fetcher := &stubFetcher{err: domain.FetchError{URL: "u", StatusCode: 500}}
	svc := NewService(fetcher, stubText{}, model, nil, 0, nil)

	_, err := svc.Extract(context.Background(), "ONE", "u", laxQuery())
	assert.True(t, domain.IsFetch(err))
	assert.Empty(t, model.prompts)
}

func TestExtract_UnreadableDocument(t *testing.T) {
	svc := NewService(&stubFetcher{}, stubText{err: errors.New("bad xref")}, &stubModel{}, nil, 0, nil)

	_, err := svc.Extract(context.Background(), "ONE", "https://example.com/b.pdf", laxQuery())
	var ee domain.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, domain.ExtractionUnreadable, ee.Kind)
	assert.Equal(t, "https://example.com/b.pdf", ee.URL)
}

func TestExtract_Deterministic(t *testing.T) {
	model := &stubModel{reply: `{"vessel":"VESSEL X","etd":"05/02","eta":"05/15"}`}
	svc := NewService(&stubFetcher{}, stubText{lines: laxLines}, model, nil, 0, nil)

	a, err := svc.Extract(context.Background(), "ONE", "u", laxQuery())
	require.NoError(t, err)
	b, err := svc.Extract(context.Background(), "ONE", "u", laxQuery())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, model.prompts[0], model.prompts[1])
}
