package export

import (
	"fmt"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/prediction"
	excelize "github.com/xuri/excelize/v2"
)

const sheetName = "Predictions"

var header = []string{"Recorded At", "Home", "Away", "Predicted Winner", "Confidence", "Home Win Probability", "Away Win Probability", "Model"}

// XLSXExporter writes prediction history to a single-sheet workbook.
type XLSXExporter struct{}

func NewXLSXExporter() XLSXExporter {
	return XLSXExporter{}
}

func (XLSXExporter) ExportXLSX(history []prediction.HistoryEntry) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(xl.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range header {
		if err := setCell(xl, col, 0, title); err != nil {
			return nil, err
		}
	}
	for i, entry := range history {
		row := []any{
			entry.Timestamp.UTC().Format(time.RFC3339),
			entry.HomeTeam,
			entry.AwayTeam,
			entry.Result.Winner(),
			entry.Result.Confidence,
			entry.Result.HomeWinProbability,
			entry.Result.AwayWinProbability,
			entry.Result.ModelUsed,
		}
		for col, value := range row {
			if err := setCell(xl, col, i+1, value); err != nil {
				return nil, err
			}
		}
	}
	if err := xl.SetColWidth(sheetName, "A", "A", 22); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(xl *excelize.File, col, row int, value any) error {
	index, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := xl.SetCellValue(sheetName, index, value); err != nil {
		return fmt.Errorf("set cell %s: %w", index, err)
	}
	return nil
}
