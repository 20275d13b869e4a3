package carriers

import (
	"fmt"
	"strings"
	"time"
)

// Deps are the collaborators shared by all carriers.
type Deps struct {
	Classifier    RegionClassifier
	Pages         PageRenderer
	Wait          WaitConfig
	MaerskAPIKey  string
	MaerskBaseURL string
	HTTPTimeout   time.Duration
	COSCOLookback int
	Now           func() time.Time
}

// Build returns the named carriers in the given order, which is also the
// order of the aggregated results.
func Build(names []string, deps Deps) ([]Carrier, error) {
	out := make([]Carrier, 0, len(names))
	for _, name := range names {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case "ONE":
			out = append(out, NewONE(deps.Classifier, deps.Pages, deps.Wait))
		case "COSCO":
			out = append(out, NewCOSCO(deps.Classifier, deps.COSCOLookback, deps.Now))
		case "KINKA":
			out = append(out, NewKINKA(deps.Pages, deps.Wait))
		case "SHIPMENTLINK":
			out = append(out, NewShipmentlink(deps.Classifier, deps.Pages, deps.Wait))
		case "MAERSK":
			out = append(out, NewMaersk(deps.MaerskAPIKey, deps.MaerskBaseURL, deps.HTTPTimeout))
		default:
			return nil, fmt.Errorf("unknown carrier %q", name)
		}
	}
	return out, nil
}
