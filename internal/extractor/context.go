package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// workbookContext is the (year, month) pair the date parser disambiguates
// bare date strings and serials against. Month is 0-11 (time.Month - 1) or
// -1 when no month could be resolved.
type workbookContext struct {
	Year  int
	Month int // 0-11, or -1 if unresolved.
}

var spanishMonths = []string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

var yearInFilenameRe = regexp.MustCompile(`20\d\d`)

// sheetNumericGroupsRe extracts up to three numeric groups separated by
// whitespace, dot, dash, or slash, e.g. "01-11", "1.11.25", "4-11-2025".
var sheetNumericGroupsRe = regexp.MustCompile(`(\d{1,4})[\s.\-/]+(\d{1,2})(?:[\s.\-/]+(\d{2,4}))?`)

// resolveContext implements spec.md §4.1.1: filename scan, sheet-name scan,
// majority vote.
func resolveContext(filename string, sheetNames []string) workbookContext {
	filenameMonth, filenameYear := scanFilename(filename)

	yearVotes := map[int]int{}
	monthVotes := map[int]int{}
	for _, name := range sheetNames {
		if y, m, ok := scanSheetName(name); ok {
			yearVotes[y]++
			if m >= 0 {
				monthVotes[m]++
			}
		}
	}

	year := mode(yearVotes)
	if year == 0 {
		if filenameYear != 0 {
			year = filenameYear
		} else {
			year = time.Now().Year()
		}
	}

	month := -1
	if filenameMonth >= 0 {
		month = filenameMonth
	} else {
		month = mode(monthVotes)
		if _, voted := monthVotes[month]; !voted {
			month = -1
		}
	}

	return workbookContext{Year: year, Month: month}
}

// scanFilename matches a Spanish month name and a /20\d\d/ year.
func scanFilename(filename string) (month, year int) {
	upper := strings.ToUpper(filename)
	month = -1
	for i, name := range spanishMonths {
		if strings.Contains(upper, name) {
			month = i
			break
		}
	}
	if m := yearInFilenameRe.FindString(filename); m != "" {
		year, _ = strconv.Atoi(m)
	}
	return month, year
}

// scanSheetName extracts up to three numeric groups from a sheet tab name.
// When all three are present, the third is treated as the year (values <
// 100 get +2000) and the second as the month (1-12, converted to 0-11).
// With only two groups, no year vote is cast and the second group is not
// assumed to be a month (day-month order is ambiguous without a third
// anchor), so only a presence entry with month=-1 is not returned — the
// caller needs at minimum the 3-group form to vote on year or month.
func scanSheetName(name string) (year, month int, ok bool) {
	m := sheetNumericGroupsRe.FindStringSubmatch(name)
	if m == nil || m[3] == "" {
		return 0, -1, false
	}

	y, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, -1, false
	}
	if y < 100 {
		y += 2000
	}

	mo, err := strconv.Atoi(m[2])
	if err != nil || mo < 1 || mo > 12 {
		return y, -1, true
	}
	return y, mo - 1, true
}

func mode(votes map[int]int) int {
	best, bestCount := 0, 0
	for v, c := range votes {
		if c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}
