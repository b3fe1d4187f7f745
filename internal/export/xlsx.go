package export

import (
	"bytes"
	"fmt"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

// XLSX renders expenses as a single-sheet workbook with the same columns as
// the CSV export. Amounts are written as numbers.
func XLSX(userName string, expenses []*domain.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	for i, header := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, e := range expenses {
		if e == nil {
			continue
		}
		values := []interface{}{
			userName,
			util.FormatExportDate(e.Date),
			e.Category,
			e.Amount.InexactFloat64(),
			e.Description,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
