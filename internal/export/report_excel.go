// Package export renders a Report to the workbook format spec.md §6
// defines for the UI layer, standing in for the "UI layer" the spec treats
// as an external collaborator. Grounded on
// wisefido-data/internal/http/device_store_excel.go's
// generateDeviceStoreExcel: header styling, frozen header row, explicit
// column widths, write into a bytes.Buffer.
package export

import (
	"bedcensus/internal/model"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReportHeader is the exact export column set from spec.md §6.
var ReportHeader = []string{
	"RUT", "Nombre", "Edad", "Diagnóstico", "Tipo Cama Final",
	"Pasó por UPC", "Es UPC Actualmente", "Fecha Ingreso", "Fecha Egreso",
	"Fecha Última Vista", "Estado Final", "Estadía Total (Días)",
	"Días Cama Periodo", "Inconsistencias",
}

var columnWidths = []float64{14, 28, 8, 32, 16, 14, 18, 16, 16, 18, 14, 18, 16, 40}

// Report writes sheetName as a single-sheet workbook with one row per
// patient event, in the column order spec.md §6 specifies.
func Report(report *model.Report, sheetName string) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, header := range ReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("coordinates to cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header style: %w", err)
		}
		if col < len(columnWidths) {
			colName, _ := excelize.ColumnNumberToName(col + 1)
			if err := f.SetColWidth(sheetName, colName, colName, columnWidths[col]); err != nil {
				f.Close()
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}
	}

	for rowIdx, e := range report.Patients {
		row := rowIdx + 2
		values := eventRow(e)
		for col, v := range values {
			cellName, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("coordinates to cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cellName, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cellName, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// eventRow maps one Event onto the column order in ReportHeader. Age has
// no field on Event — spec.md's Snapshot model recognizes an EDAD column
// during extraction but never carries it past the row-decode step, so
// there is nothing to propagate here; the column is left blank rather than
// invented.
func eventRow(e *model.Event) []any {
	return []any{
		e.Identity,
		e.Name,
		"",
		e.Diagnosis,
		e.BedType,
		yesNo(e.WasEverUPC),
		yesNo(e.IsUPC),
		formatDate(e.FirstSeen),
		formatDate(exitDate(e)),
		formatDate(e.LastSeen),
		e.Status.String(),
		e.LOS,
		e.DaysInPeriod,
		strings.Join(e.Inconsistencies, "; "),
	}
}

func exitDate(e *model.Event) time.Time {
	if d := e.ExitDate(); d != nil {
		return *d
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
