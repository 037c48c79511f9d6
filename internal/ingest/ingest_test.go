package ingest_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"bedcensus/internal/ingest"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func writeTestWorkbook(t *testing.T, dir, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
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
	require.NoError(t, f.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestFilesParsesMultipleWorkbooksConcurrently(t *testing.T) {
	dir := t.TempDir()
	header := []any{"RUT", "NOMBRE PACIENTE", "TIPO CAMA", "DIAGNOSTICO"}
	p1 := writeTestWorkbook(t, dir, "a.xlsx", [][]any{header, {"11.111.111-1", "Juan Perez", "BASICA", "Gripe"}})
	p2 := writeTestWorkbook(t, dir, "b.xlsx", [][]any{header, {"22.222.222-2", "Ana Soto", "BASICA", "Sepsis"}})

	results := ingest.Files(context.Background(), []string{p1, p2}, 0, zap.NewNop())
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Len(t, r.Snapshots, 1)
	}

	merged := ingest.Merge(results)
	require.Len(t, merged, 2)
}

func TestFilesReportsPerFileErrorWithoutAbortingOthers(t *testing.T) {
	dir := t.TempDir()
	header := []any{"RUT", "NOMBRE PACIENTE", "TIPO CAMA", "DIAGNOSTICO"}
	good := writeTestWorkbook(t, dir, "good.xlsx", [][]any{header, {"11.111.111-1", "Juan Perez", "BASICA", "Gripe"}})
	missing := filepath.Join(dir, "missing.xlsx")

	results := ingest.Files(context.Background(), []string{good, missing}, 0, zap.NewNop())
	require.Len(t, results, 2)

	var errCount, okCount int
	for _, r := range results {
		if r.Err != nil {
			errCount++
		} else {
			okCount++
		}
	}
	require.Equal(t, 1, errCount)
	require.Equal(t, 1, okCount)

	merged := ingest.Merge(results)
	require.Len(t, merged, 1)
}

func TestFilesRespectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	header := []any{"RUT", "NOMBRE PACIENTE", "TIPO CAMA", "DIAGNOSTICO"}
	p := writeTestWorkbook(t, dir, "a.xlsx", [][]any{header, {"11.111.111-1", "Juan Perez", "BASICA", "Gripe"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ingest.Files(ctx, []string{p}, 0, zap.NewNop())
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

