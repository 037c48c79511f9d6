package workbook

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// excelEpochOffset is the number of days between the Excel 1900 date
// system's epoch and the Unix epoch (1970-01-01), per spec.md §4.1.2.
const excelEpochOffset = 25569

// serialToTime converts a raw Excel date serial to UTC, matching the same
// "(value - 25569) * 86400s" rule the Extractor's own date parser applies
// to numeric cells it encounters directly.
func serialToTime(serial float64) time.Time {
	seconds := (serial - excelEpochOffset) * 86400
	return time.Unix(int64(seconds), 0).UTC()
}

// excelWorkbook adapts an *excelize.File to the Workbook contract. Grounded
// on wisefido-data/internal/http/admin_device_store_impl.go's
// excelize.OpenReader + GetRows pattern, extended to recover each cell's
// type so the Extractor can tell a date-formatted serial apart from a
// plain number or a free-text string.
type excelWorkbook struct {
	f *excelize.File
}

// Open decodes r as an XLSX workbook. The caller owns the returned
// Workbook's lifetime via Close.
func Open(r io.Reader) (*excelWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &excelWorkbook{f: f}, nil
}

func (w *excelWorkbook) Close() error {
	return w.f.Close()
}

func (w *excelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *excelWorkbook) Rows(sheet string) ([]Row, error) {
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows for sheet %q: %w", sheet, err)
	}

	out := make([]Row, len(rows))
	for r, rawRow := range rows {
		row := make(Row, len(rawRow))
		for c, raw := range rawRow {
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("cell name for row %d col %d: %w", r+1, c+1, err)
			}
			row[c] = cellFromRaw(w.f, sheet, cellName, raw)
		}
		out[r] = row
	}
	return out, nil
}

// cellFromRaw classifies one raw excelize cell value into Empty / Number /
// Date / String. excelize's GetCellType reports CellTypeDate only for cells
// stored with the "d" type; ordinary numeric cells come back untyped or as
// CellTypeNumber, and those whose style carries a built-in date number
// format (IDs 14-22, 45-47) are the "native date" case spec.md §4.1.2
// distinguishes from a plain numeric serial. Custom date formats are not
// recognized; such cells are returned as CellNumber.
func cellFromRaw(f *excelize.File, sheet, cellName, raw string) Cell {
	if raw == "" {
		return Cell{Kind: CellEmpty}
	}

	kind, err := f.GetCellType(sheet, cellName)
	if err != nil {
		return Cell{Kind: CellString, Str: raw}
	}

	switch kind {
	case excelize.CellTypeDate:
		if num, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: CellDate, Num: num, Time: serialToTime(num)}
		}
		return Cell{Kind: CellString, Str: raw}
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Cell{Kind: CellString, Str: raw}
		}
		if idx, err := f.GetCellStyle(sheet, cellName); err == nil && idx != 0 {
			if style, err := f.GetStyle(idx); err == nil &&
				((style.NumFmt >= 14 && style.NumFmt <= 22) || (style.NumFmt >= 45 && style.NumFmt <= 47)) {
				return Cell{Kind: CellDate, Num: num, Time: serialToTime(num)}
			}
		}
		return Cell{Kind: CellNumber, Num: num}
	default:
		return Cell{Kind: CellString, Str: raw}
	}
}
