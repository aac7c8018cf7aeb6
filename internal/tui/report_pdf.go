package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kunya-oba/morning-dashboard/internal/models"
)

// MorningReport is the snapshot written to the exported PDF.
type MorningReport struct {
	Date     time.Time
	Location string
	Weather  *models.Weather
	Train    *models.TrainStatus
	Tasks    []models.Task
	Routine  []models.RoutineItem
	Progress models.DailyProgress
	Streak   models.StreakInfo
}

// WritePDFReport renders the report into dir and returns the file path.
// Card data that has not loaded yet is simply omitted.
func WritePDFReport(r MorningReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Morning Report: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(12)

	if r.Weather != nil {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Weather (%s)", r.Location))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("  %.1f C, humidity %.0f%%, wind %.1f m/s, precipitation %.1f mm",
			r.Weather.Temperature, r.Weather.Humidity, r.Weather.WindSpeed, r.Weather.Precipitation))
		pdf.Ln(10)
	}

	if r.Train != nil {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Transit: %s %s", r.Train.Operator, r.Train.Railway))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		state := "Normal operation"
		if r.Train.Disrupted {
			state = "DISRUPTED"
		}
		pdf.Cell(0, 8, "  "+state)
		pdf.Ln(10)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Tasks")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(r.Tasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks.")
		pdf.Ln(8)
	}
	completed := 0
	for _, t := range r.Tasks {
		status := "[ ]"
		if t.Completed {
			status = "[x]"
			completed++
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s (%s)", status, t.Title, t.Priority))
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %d/%d", completed, len(r.Tasks)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Morning Routine")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	routineDone := 0
	for _, it := range r.Routine {
		status := "[ ]"
		if completedItem(r.Progress, it.ID) {
			status = "[x]"
			routineDone++
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s", status, it.Title))
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Routine: %d/%d, streak %d days (best %d)",
		routineDone, len(r.Routine), r.Streak.Current, r.Streak.Longest))

	path := filepath.Join(dir, fmt.Sprintf("morning_%s.pdf", r.Date.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
