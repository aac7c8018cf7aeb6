package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/models"
)

func TestWritePDFReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := MorningReport{
		Date:     time.Date(2026, 9, 1, 7, 0, 0, 0, time.Local),
		Location: "東京",
		Weather:  &models.Weather{Temperature: 21.5, Humidity: 60, WindSpeed: 3.2},
		Train:    &models.TrainStatus{Operator: "都営地下鉄", Railway: "浅草線"},
		Tasks: []models.Task{
			{Title: "morning review", Completed: true, Priority: models.PriorityHigh},
			{Title: "send summary", Priority: models.PriorityMedium},
		},
		Routine: []models.RoutineItem{
			{ID: "1", Title: "wake up", Enabled: true},
		},
		Progress: models.DailyProgress{Date: "2026-09-01", CompletedItems: []string{"1"}},
		Streak:   models.StreakInfo{Current: 3, Longest: 7},
	}

	path, err := WritePDFReport(r, dir)
	if err != nil {
		t.Fatalf("WritePDFReport failed: %v", err)
	}
	if filepath.Base(path) != "morning_2026-09-01.pdf" {
		t.Fatalf("unexpected file name: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report file is empty")
	}
}

func TestWritePDFReportOmitsMissingCards(t *testing.T) {
	r := MorningReport{Date: time.Date(2026, 9, 1, 7, 0, 0, 0, time.Local)}
	if _, err := WritePDFReport(r, t.TempDir()); err != nil {
		t.Fatalf("report without card data should still render: %v", err)
	}
}
