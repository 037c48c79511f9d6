// Package workbook defines the contract the Extractor consumes: an ordered
// list of sheet names and, per sheet, a two-dimensional grid of typed
// cells. Decoding the actual file format is an external concern — the
// default implementation in excel.go is the only thing in this module that
// knows excelize exists.
package workbook

import "time"

// CellKind distinguishes the four cell shapes spec.md §6 requires the
// workbook reader to expose.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellString
	CellDate
)

// Cell is one worksheet cell, tagged with its kind so the Extractor's date
// parser (4.1.2) can tell a spreadsheet serial number apart from a plain
// numeric-looking string.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
	Time time.Time
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellString && c.Str == "")
}

// Row is one worksheet row, left-to-right.
type Row []Cell

// Workbook exposes sheet names in stable, file order and the row grid for
// any one of them.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([]Row, error)
}
