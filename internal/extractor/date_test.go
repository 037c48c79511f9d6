package extractor

import (
	"testing"
	"time"

	"bedcensus/internal/model"
	"bedcensus/internal/workbook"

	"github.com/stretchr/testify/require"
)

func TestParseDateStringUsesMonthContextToDisambiguate(t *testing.T) {
	// "03-11" is ambiguous (day-month or month-day) without context; the
	// workbook context says the sheet is November (month index 10), so
	// 11 must be the month and 3 the day.
	ctx := workbookContext{Year: 2025, Month: 10}
	got, ok := parseDateString("03-11", ctx)
	require.True(t, ok)
	require.Equal(t, time.November, got.Month())
	require.Equal(t, 3, got.Day())
	require.Equal(t, 2025, got.Year())
}

func TestParseDateStringFallsBackToDayMonthWithoutContext(t *testing.T) {
	ctx := workbookContext{Year: 2025, Month: -1}
	got, ok := parseDateString("03-11", ctx)
	require.True(t, ok)
	require.Equal(t, time.November, got.Month())
	require.Equal(t, 3, got.Day())
}

func TestParseDateStringRejectsRollover(t *testing.T) {
	ctx := workbookContext{Year: 2025, Month: 1} // February
	_, ok := parseDateString("30-02", ctx)
	require.False(t, ok)
}

func TestParseDateStringExplicitYear(t *testing.T) {
	ctx := workbookContext{Year: 2020, Month: -1}
	got, ok := parseDateString("4-11-25", ctx)
	require.True(t, ok)
	require.Equal(t, 2025, got.Year())
	require.Equal(t, time.November, got.Month())
	require.Equal(t, 4, got.Day())
}

func TestParseDateStringNoMatch(t *testing.T) {
	_, ok := parseDateString("no date here", workbookContext{Year: 2025, Month: -1})
	require.False(t, ok)
}

func TestParseCellDateFromNativeDateCell(t *testing.T) {
	want := time.Date(2025, time.March, 4, 15, 0, 0, 0, time.UTC)
	cell := workbook.Cell{Kind: workbook.CellDate, Time: want}
	got, ok := parseCellDate(cell, workbookContext{Year: 2025, Month: 2})
	require.True(t, ok)
	require.True(t, got.Equal(model.Noon(want)))
}

func TestParseCellDateFromNumericSerial(t *testing.T) {
	// Excel serial 45717 = 2025-03-01.
	cell := workbook.Cell{Kind: workbook.CellNumber, Num: 45717}
	got, ok := parseCellDate(cell, workbookContext{Year: 2025, Month: -1})
	require.True(t, ok)
	require.Equal(t, 2025, got.Year())
	require.Equal(t, time.March, got.Month())
	require.Equal(t, 1, got.Day())
}

func TestParseCellDateFromStringCell(t *testing.T) {
	cell := workbook.Cell{Kind: workbook.CellString, Str: "01-03-2025"}
	got, ok := parseCellDate(cell, workbookContext{Year: 2025, Month: -1})
	require.True(t, ok)
	require.Equal(t, time.March, got.Month())
	require.Equal(t, 1, got.Day())
}

func TestParseCellDateEmptyCell(t *testing.T) {
	_, ok := parseCellDate(workbook.Cell{Kind: workbook.CellEmpty}, workbookContext{Year: 2025, Month: -1})
	require.False(t, ok)
}
