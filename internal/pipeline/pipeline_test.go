package pipeline_test

import (
	"bytes"
	"testing"

	"bedcensus/internal/model"
	"bedcensus/internal/pipeline"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"RUT", "NOMBRE PACIENTE", "TIPO CAMA", "DIAGNOSTICO"},
		{"11.111.111-1", "Juan Perez", "BASICA", "Neumonia"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SetSheetName("Sheet1", "1-11-25"))

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestPipelineEndToEnd(t *testing.T) {
	data := buildWorkbook(t)

	snapshots, err := pipeline.ParseWorkbook(bytes.NewReader(data), "censo.xlsx", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	require.Equal(t, "111111111", snapshots[0].RUT)

	events := pipeline.Reconcile(snapshots)
	require.Len(t, events, 1)
	require.Equal(t, model.EventHospitalized, events[0].Status)

	start := events[0].FirstSeen
	end := start
	report := pipeline.ReportForPeriod(events, "Test Window", start, end)
	require.NotNil(t, report)
	require.Len(t, report.Patients, 1)
}

func TestParseWorkbookReturnsParseErrorForGarbageInput(t *testing.T) {
	_, err := pipeline.ParseWorkbook(bytes.NewReader([]byte("not an xlsx")), "bad.xlsx", zap.NewNop())
	require.Error(t, err)

	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "bad.xlsx", parseErr.File)
}

func TestErrEmptyWorkbook(t *testing.T) {
	require.ErrorIs(t, pipeline.ErrEmptyWorkbook("f.xlsx", nil), model.ErrEmptyInput)
	require.NoError(t, pipeline.ErrEmptyWorkbook("f.xlsx", []model.Snapshot{{}}))
}

