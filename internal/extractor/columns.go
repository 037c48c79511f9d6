package extractor

import "strings"

// column identifies a semantic field recognized in a header row. Using a
// small closed enum instead of a string->index map keyed by arbitrary
// header text keeps the column map a fixed-size array (spec.md §9 design
// note).
type column int

const (
	colRUT column = iota
	colName
	colAge
	colBedType
	colUPC
	colDiagnosis
	numColumns
)

// columnMap maps each recognized column to its position in a row, -1 if
// not present. Rebuilt every time a new header row is found.
type columnMap [numColumns]int

func newColumnMap() columnMap {
	var m columnMap
	for i := range m {
		m[i] = -1
	}
	return m
}

func (m columnMap) get(row []string, col column) string {
	idx := m[col]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isPatientNameToken / isDiagnosisToken reflect the substring vocabulary
// the header heuristic (spec.md §4.1.3) checks for.
func isPatientNameToken(upper string) bool {
	return strings.Contains(upper, "PACIENTE") || strings.Contains(upper, "NOMBRE")
}

func isDiagnosisToken(upper string) bool {
	return strings.Contains(upper, "PATOLOGIA") || strings.Contains(upper, "PATOLOGÍA") ||
		strings.Contains(upper, "DIAGNOSTICO") || upper == "DIAG" || upper == "DG" || upper == "DIAG."
}

// isHeaderRow implements spec.md §4.1.3: a row qualifies as a header if its
// joined uppercase text contains (RUT and (name-token or diagnosis-token))
// or (CAMA and name-token).
func isHeaderRow(joinedUpper string) bool {
	hasRUT := strings.Contains(joinedUpper, "RUT")
	hasCAMA := strings.Contains(joinedUpper, "CAMA")
	hasName := isPatientNameToken(joinedUpper)
	hasDiag := isDiagnosisTokenAnywhere(joinedUpper)
	return (hasRUT && (hasName || hasDiag)) || (hasCAMA && hasName)
}

// isDiagnosisTokenAnywhere checks the diagnosis vocabulary against a
// joined, space-separated row rather than a single cell (used only by the
// header heuristic, which scans the whole row at once).
func isDiagnosisTokenAnywhere(joinedUpper string) bool {
	return strings.Contains(joinedUpper, "PATOLOGIA") || strings.Contains(joinedUpper, "PATOLOGÍA") ||
		strings.Contains(joinedUpper, "DIAGNOSTICO") ||
		strings.Contains(joinedUpper, " DIAG ") || strings.HasSuffix(joinedUpper, " DIAG") ||
		strings.Contains(joinedUpper, " DG ") || strings.HasSuffix(joinedUpper, " DG")
}

// buildColumnMap implements spec.md §4.1.3 step 4: substring match,
// first-win per column, scanning header cells left to right.
func buildColumnMap(header []string) columnMap {
	m := newColumnMap()
	for i, cell := range header {
		upper := strings.ToUpper(strings.TrimSpace(cell))
		switch {
		case m[colRUT] < 0 && strings.Contains(upper, "RUT"):
			m[colRUT] = i
		case m[colName] < 0 && isPatientNameToken(upper):
			m[colName] = i
		case m[colAge] < 0 && strings.Contains(upper, "EDAD"):
			m[colAge] = i
		case m[colBedType] < 0 && strings.Contains(upper, "TIPO"):
			m[colBedType] = i
		case m[colUPC] < 0 && strings.Contains(upper, "UPC"):
			m[colUPC] = i
		case m[colDiagnosis] < 0 && isDiagnosisToken(upper):
			m[colDiagnosis] = i
		}
	}
	return m
}

// blockMarker classifies a short row as a block-switch marker, per
// spec.md §4.1.3 step 2.
type blockMarker int

const (
	blockNone blockMarker = iota
	blockDischarged
	blockTransferred
)

func detectBlockMarker(joinedUpper string) blockMarker {
	if len(joinedUpper) >= 200 {
		return blockNone
	}
	switch {
	case strings.Contains(joinedUpper, "ALTAS") && !strings.Contains(joinedUpper, "NO"):
		return blockDischarged
	case strings.Contains(joinedUpper, "TRASLADO") || strings.Contains(joinedUpper, "TRASLAD") || strings.Contains(joinedUpper, "DERIVADO"):
		return blockTransferred
	default:
		return blockNone
	}
}
