package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/xuri/excelize/v2"
)

// extractSpreadsheet reads the first sheet (or every sheet when allSheets is
// set) into ordered rows. The first row of each sheet supplies the column
// headers; cell values keep their raw formatted string plus a cached numeric
// parse when one applies.
func extractSpreadsheet(path string, allSheets bool) ([]docModel.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Error("failed opening spreadsheet", "error", err)
		return nil, fmt.Errorf("%w: %v", docModel.ErrCorruptDocument, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("Error closing spreadsheet", "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", docModel.ErrCorruptDocument)
	}
	if !allSheets {
		sheets = sheets[:1]
	}

	tables := make([]docModel.Table, 0, len(sheets))
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", docModel.ErrCorruptDocument, sheet, err)
		}
		tables = append(tables, buildTable(sheet, rows))
	}
	logger.Debug("extractSpreadsheet", "sheets", len(tables))
	return tables, nil
}

func buildTable(sheet string, rows [][]string) docModel.Table {
	table := docModel.Table{Sheet: sheet}
	if len(rows) == 0 {
		return table
	}

	table.Headers = rows[0]
	table.Rows = make([][]docModel.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]docModel.Cell, len(row))
		for i, raw := range row {
			cells[i] = toCell(raw)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func toCell(raw string) docModel.Cell {
	cell := docModel.Cell{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cell
	}
	if n, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		cell.Number = n
		cell.IsNumber = true
	}
	return cell
}
