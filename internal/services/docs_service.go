package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/utils"
)

// SheetRequest is a set of recommendations to print.
type SheetRequest struct {
	DeparturePort   string                  `json:"departure_port"`
	DestinationPort string                  `json:"destination_port"`
	Results         []models.ScheduleResult `json:"results"`
}

// DocsService renders recommendation sheets as PDF.
type DocsService struct {
	Log *zap.Logger
	Now func() time.Time
}

func (s DocsService) GenerateScheduleSheet(requestID string, req SheetRequest) ([]byte, string, error) {
	if len(req.Results) == 0 {
		return nil, "", domain.ValidationError{Field: "results", Msg: "results must not be empty"}
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if s.Log != nil {
		utils.LogEvent(s.Log, requestID, "docs", "generate_schedule_sheet",
			fmt.Sprintf("%s -> %s rows=%d", req.DeparturePort, req.DestinationPort, len(req.Results)))
	}
	return buildScheduleSheetPDF(req, now())
}

var sheetColumns = []struct {
	title string
	width float64
}{
	{"Carrier", 30},
	{"Vessel", 55},
	{"Voyage", 25},
	{"ETD", 25},
	{"ETA", 25},
	{"Fare", 30},
}

func buildScheduleSheetPDF(req SheetRequest, generated time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Sailing schedule", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SAILING SCHEDULE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Route     : %s -> %s", safe(req.DeparturePort, "-"), safe(req.DestinationPort, "-"))))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated : "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	for _, col := range sheetColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, r := range req.Results {
		cells := []string{r.Company, r.Vessel, r.Voyage, r.ETD, r.ETA, r.Fare}
		for i, col := range sheetColumns {
			pdf.CellFormat(col.width, 7, tr(safe(cells[i], "-")), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Sources")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	for i, r := range req.Results {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d) %s: %s", i+1, safe(r.Company, "-"), safe(r.ScheduleURL, "-"))), "", "", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Dates were read from carrier schedules and may change. Confirm with the carrier before booking.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SCHEDULE_%s_%s_%s.pdf",
		safeFilenamePart(req.DeparturePort), safeFilenamePart(req.DestinationPort), generated.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
