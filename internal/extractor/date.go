package extractor

import (
	"bedcensus/internal/model"
	"bedcensus/internal/workbook"
	"regexp"
	"strconv"
	"time"
)

// excelEpochOffset mirrors workbook.serialToTime's constant; kept local
// because the Extractor must apply the same rule to numeric cells it
// receives directly (not just ones the workbook adapter already
// classified as dates).
const excelEpochOffset = 25569

var dateStringRe = regexp.MustCompile(`(\d{1,2})[\s.\-/]+(\d{1,2})(?:[\s.\-/]+(\d{2,4}))?`)

// parseCellDate implements spec.md §4.1.2 for a single cell. It returns
// ok=false when the cell carries no usable date. Extract does not call it:
// every row takes its date from the sheet's tab name (parseSheetNameDate),
// and a sheet whose tab name yields no date is skipped.
func parseCellDate(cell workbook.Cell, ctx workbookContext) (time.Time, bool) {
	switch cell.Kind {
	case workbook.CellDate:
		return model.Noon(cell.Time), true
	case workbook.CellNumber:
		return model.Noon(serialToTime(cell.Num)), true
	case workbook.CellString:
		return parseDateString(cell.Str, ctx)
	default:
		return time.Time{}, false
	}
}

// parseSheetNameDate resolves the date a worksheet tab represents, e.g.
// "01-11", "Sabado 4-11-25". It is the same regex/disambiguation rule as
// parseDateString, applied to the tab name itself.
func parseSheetNameDate(sheetName string, ctx workbookContext) (time.Time, bool) {
	return parseDateString(sheetName, ctx)
}

func parseDateString(s string, ctx workbookContext) (time.Time, bool) {
	m := dateStringRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	p1, err1 := strconv.Atoi(m[1])
	p2, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	year := ctx.Year
	if m[3] != "" {
		if y, err := strconv.Atoi(m[3]); err == nil {
			if y < 100 {
				y += 2000
			}
			year = y
		}
	}

	var day, month int
	if ctx.Month >= 0 {
		switch {
		case p2 == ctx.Month+1:
			day, month = p1, p2-1
		case p1 == ctx.Month+1:
			day, month = p2, p1-1
		default:
			day, month = p1, p2-1
		}
	} else {
		day, month = p1, p2-1
	}

	if month < 0 || month > 11 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	candidate := time.Date(year, time.Month(month+1), day, 12, 0, 0, 0, time.Local)
	if int(candidate.Month())-1 != month {
		// Rollover (e.g. Feb 30 -> Mar 2): reject rather than silently
		// accepting a different date than requested.
		return time.Time{}, false
	}
	return candidate, true
}

func serialToTime(serial float64) time.Time {
	seconds := (serial - excelEpochOffset) * 86400
	return time.Unix(int64(seconds), 0).UTC()
}
