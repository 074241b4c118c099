package report

import (
	"fmt"

	"renovation-tracker/internal/data/entity"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Customers"

// Spreadsheet writes one header row and one row per customer.
func Spreadsheet(customers []*entity.Customer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, Columns); err != nil {
		return nil, err
	}
	for i, c := range customers {
		if err := writeRow(f, i+2, row(c)); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
