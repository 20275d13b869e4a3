package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsched/internal/domain"
)

func TestParseReply_Success(t *testing.T) {
	reply := "Here is the closest sailing:\n```json\n{\"vessel\": \"VESSEL X\", \"etd\": \"05/02\", \"eta\": \"05/15\"}\n```"
	fields, err := ParseReply(reply)
	require.Nil(t, err)
	assert.Equal(t, ReplyFields{Vessel: "VESSEL X", ETD: "05/02", ETA: "05/15"}, fields)
}

func TestParseReply_OnlyEta(t *testing.T) {
	fields, err := ParseReply(`{"vessel":"ONE HARMONY","voyage":"012E","eta":"06/01","etd":null}`)
	require.Nil(t, err)
	assert.Equal(t, "012E", fields.Voyage)
	assert.Equal(t, "", fields.ETD)
	assert.Equal(t, "06/01", fields.ETA)
}

func TestParseReply_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		kind  domain.ReplyErrorKind
	}{
		{"blank", "   \n", domain.EmptyReply},
		{"prose only", "I could not find a matching schedule.", domain.NoJSONFound},
		{"broken json", `{"vessel": "A", "etd": 05/02}`, domain.MalformedJSON},
		{"missing vessel", `{"etd": "05/02", "eta": "05/15"}`, domain.MalformedJSON},
		{"empty vessel", `{"vessel": "", "etd": "05/02"}`, domain.MalformedJSON},
		{"no dates", `{"vessel": "VESSEL X"}`, domain.MalformedJSON},
		{"null and blank dates", `{"vessel":"VESSEL X","etd":null,"eta":""}`, domain.MalformedJSON},
		{"blank etd only", `{"vessel":"VESSEL X","etd":""}`, domain.MalformedJSON},
		{"numeric vessel", `{"vessel": 12, "etd": "05/02"}`, domain.MalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReply(tt.reply)
			require.NotNil(t, err)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.reply, err.RawResponse)
		})
	}
}

func TestBuildSelectionPrompt(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	p := BuildSelectionPrompt("LOS ANGELES 05/15", "Tokyo", "Los Angeles", []string{"LOS ANGELES", "LA"}, base)

	assert.Contains(t, p, "closest to 05/01")
	assert.Contains(t, p, "Departure port: Tokyo")
	assert.Contains(t, p, "LOS ANGELES, LA")
	assert.Contains(t, p, "---\nLOS ANGELES 05/15\n")
}
