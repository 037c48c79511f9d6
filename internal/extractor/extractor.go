// Package extractor decodes a workbook (spec.md §4.1) into a flat,
// ordered stream of model.Snapshot. It owns no shared state: each call to
// Extract is a pure function of its inputs, which is what lets
// internal/ingest fan multiple files out across goroutines safely
// (spec.md §5).
package extractor

import (
	"bedcensus/internal/model"
	"bedcensus/internal/workbook"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Extract decodes wb into Snapshots, tagging each with sourceFile for
// provenance. A ParseError is only ever returned by the caller that opened
// the workbook in the first place (internal/pipeline); this function
// itself fails closed per sheet, not per workbook, matching spec.md §4.1's
// "unparseable date in a sheet name -> skip that sheet" soft-error rule.
func Extract(wb workbook.Workbook, sourceFile string, logger *zap.Logger) []model.Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}

	sheetNames := wb.SheetNames()
	ctx := resolveContext(sourceFile, sheetNames)

	type sheetWithDate struct {
		name string
		date time.Time
	}
	var ordered []sheetWithDate
	for _, name := range sheetNames {
		date, ok := parseSheetNameDate(name, ctx)
		if !ok {
			logger.Debug("skipping sheet with unparseable tab name", zap.String("sheet", name), zap.String("file", sourceFile))
			continue
		}
		ordered = append(ordered, sheetWithDate{name: name, date: date})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].date.Before(ordered[j].date) })

	var out []model.Snapshot
	for _, sw := range ordered {
		rows, err := wb.Rows(sw.name)
		if err != nil {
			logger.Warn("skipping sheet with unreadable rows", zap.String("sheet", sw.name), zap.Error(err))
			continue
		}
		out = append(out, decodeSheet(rows, sw.date, sourceFile)...)
	}
	return out
}

// decodeSheet implements spec.md §4.1.3's row walk: block tracking, header
// detection, column recognition, row filtering, and snapshot emission.
func decodeSheet(rows []workbook.Row, date time.Time, sourceFile string) []model.Snapshot {
	var out []model.Snapshot

	currentBlock := model.SnapshotHospitalized
	cols := newColumnMap()
	headerFound := false

	for _, row := range rows {
		text := rowText(row)
		joinedUpper := strings.ToUpper(strings.Join(text, " "))

		if isHeaderRow(joinedUpper) {
			cols = buildColumnMap(text)
			currentBlock = model.SnapshotHospitalized
			headerFound = true
			continue
		}

		if marker := detectBlockMarker(joinedUpper); marker != blockNone {
			switch marker {
			case blockDischarged:
				currentBlock = model.SnapshotDischarged
			case blockTransferred:
				currentBlock = model.SnapshotTransferred
			}
			continue
		}

		if !headerFound {
			continue
		}

		snap, ok := decodeRow(cols, text, date, currentBlock, sourceFile)
		if ok {
			out = append(out, snap)
		}
	}
	return out
}

func rowText(row workbook.Row) []string {
	text := make([]string, len(row))
	for i, cell := range row {
		text[i] = cellText(cell)
	}
	return text
}

func cellText(cell workbook.Cell) string {
	switch cell.Kind {
	case workbook.CellString:
		return strings.TrimSpace(cell.Str)
	case workbook.CellNumber:
		return fmt.Sprintf("%v", cell.Num)
	case workbook.CellDate:
		return cell.Time.Format("2006-01-02")
	default:
		return ""
	}
}

// decodeRow implements spec.md §4.1.3 steps 5-7: filtering, normalization,
// and snapshot emission.
func decodeRow(cols columnMap, row []string, date time.Time, block model.SnapshotStatus, sourceFile string) (model.Snapshot, bool) {
	if nonEmptyCount(row) <= 2 {
		return model.Snapshot{}, false
	}

	rawName := cols.get(row, colName)
	rawID := cols.get(row, colRUT)
	nameUpper := strings.ToUpper(strings.TrimSpace(rawName))
	idUpper := strings.ToUpper(strings.TrimSpace(rawID))

	// Ghost header rows: the header-detection pass matched an earlier row,
	// but a later row repeats the literal column labels.
	if nameUpper == "NOMBRE" || nameUpper == "PACIENTE" || idUpper == "RUT" || idUpper == "RUN" {
		return model.Snapshot{}, false
	}

	if strings.HasPrefix(nameUpper, "BLOQUEO") || strings.Contains(nameUpper, "AISLAMIENTO") ||
		strings.Contains(nameUpper, "SERVICIO DE") || strings.Contains(nameUpper, "UNIDAD DE") ||
		nameUpper == "CAMA" || nameUpper == "TIPO DE CAMA" {
		return model.Snapshot{}, false
	}

	if nameUpper == "" {
		return model.Snapshot{}, false
	}

	rut := normalizeRUT(rawID)
	diagnosis := strings.TrimSpace(cols.get(row, colDiagnosis))
	if rut == "" && diagnosis == "" {
		return model.Snapshot{}, false
	}

	snap := model.Snapshot{
		Date:           date,
		RUT:            rut,
		Name:           strings.TrimSpace(rawName),
		NormalizedName: normalizeName(rawName),
		Diagnosis:      diagnosis,
		BedType:        normalizeBedType(cols.get(row, colBedType)),
		IsUPC:          parseUPC(cols.get(row, colUPC)),
		Status:         block,
		SourceFile:     sourceFile,
	}
	if !snap.HasIdentity() {
		return model.Snapshot{}, false
	}
	return snap, true
}

func nonEmptyCount(row []string) int {
	n := 0
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}
