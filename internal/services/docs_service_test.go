package services

import (
	"bytes"
	"testing"
	"time"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
)

func TestDocsServiceGenerateScheduleSheet(t *testing.T) {
	svc := DocsService{Now: func() time.Time { return time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC) }}

	pdf, filename, err := svc.GenerateScheduleSheet("req-1", SheetRequest{
		DeparturePort:   "Tokyo",
		DestinationPort: "Los Angeles",
		Results: []models.ScheduleResult{
			{Company: "ONE", Vessel: "VESSEL X", ETD: "05/02", ETA: "05/15", ScheduleURL: "https://example.com/a.pdf"},
			{Company: "Maersk", Vessel: "MAERSK NEAR", ETD: "04/29", ETA: "05/12", Fare: "$1,850"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateScheduleSheet returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "SCHEDULE_Tokyo_Los_Angeles_20250501.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceRejectsEmptySheet(t *testing.T) {
	_, _, err := DocsService{}.GenerateScheduleSheet("", SheetRequest{DeparturePort: "Tokyo"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart(" a/b:c "); got != "a_b_c" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart(""); got != "NA" {
		t.Fatalf("got %q", got)
	}
}
