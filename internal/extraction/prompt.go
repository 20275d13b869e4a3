// Package extraction turns one candidate document into a schedule result
// with a single model call.
package extraction

import (
	"fmt"
	"strings"
	"time"

	"shipsched/internal/utils"
)

// SystemPrompt frames the selection call.
const SystemPrompt = "You are an experienced ocean freight booking advisor who reads carrier sailing schedules."

// BuildSelectionPrompt asks for the one sailing closest to baseDate.
func BuildSelectionPrompt(candidates, departure, destination string, aliases []string, baseDate time.Time) string {
	var b strings.Builder
	b.WriteString("Below are candidate lines extracted from a carrier schedule PDF.\n")
	fmt.Fprintf(&b, "Departure port: %s\n", departure)
	fmt.Fprintf(&b, "Destination: %s (also written as: %s)\n", destination, strings.Join(aliases, ", "))
	fmt.Fprintf(&b, "Pick exactly one sailing (vessel, ETD, ETA) for this destination whose date is closest to %s.\n", utils.FormatMonthDay(baseDate))
	b.WriteString("When the departure or destination row is identifiable, always include its date.\n\n")
	b.WriteString("Answer with JSON only:\n")
	b.WriteString("{\n")
	b.WriteString(`  "vessel": "vessel name",` + "\n")
	b.WriteString(`  "voyage": "voyage number if shown",` + "\n")
	b.WriteString(`  "etd": "MM/DD or MM/DD - MM/DD",` + "\n")
	b.WriteString(`  "eta": "MM/DD"` + "\n")
	b.WriteString("}\n")
	b.WriteString("---\n")
	b.WriteString(candidates)
	b.WriteString("\n")
	return b.String()
}
