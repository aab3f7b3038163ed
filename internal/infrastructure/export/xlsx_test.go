package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/prediction"
	excelize "github.com/xuri/excelize/v2"
)

func TestXLSXExporter_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	history := []prediction.HistoryEntry{
		{
			Result:    prediction.Result{Prediction: prediction.OutcomeHome, Confidence: 0.67, HomeWinProbability: 0.67, AwayWinProbability: 0.33, HomeTeam: "BOS", AwayTeam: "LAL", ModelUsed: "game_logistic:v1"},
			HomeTeam:  "BOS",
			AwayTeam:  "LAL",
			Timestamp: at,
		},
		{
			Result:    prediction.Result{Prediction: prediction.OutcomeAway, Confidence: 0.58, HomeWinProbability: 0.42, AwayWinProbability: 0.58, HomeTeam: "MIA", AwayTeam: "DEN", ModelUsed: "game_logistic:v1"},
			HomeTeam:  "MIA",
			AwayTeam:  "DEN",
			Timestamp: at.Add(time.Minute),
		},
	}

	out, err := NewXLSXExporter().ExportXLSX(history)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	xl, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if rows[0][0] != "Recorded At" || rows[0][7] != "Model" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2026-03-01T20:00:00Z" || rows[1][3] != "BOS" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "DEN" || rows[2][4] != "0.58" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestXLSXExporter_EmptyHistoryHasHeaderOnly(t *testing.T) {
	t.Parallel()

	out, err := NewXLSXExporter().ExportXLSX(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	xl, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
