package export_test

import (
	"bytes"
	"testing"
	"time"

	"bedcensus/internal/export"
	"bedcensus/internal/model"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportWritesHeaderAndRows(t *testing.T) {
	discharge := model.Noon(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.Local))
	report := &model.Report{
		Title: "January 2025",
		Patients: []*model.Event{
			{
				Identity:      "11111111",
				Name:          "Juan Perez",
				Diagnosis:     "Neumonia",
				BedType:       "BASICA",
				IsUPC:         false,
				WasEverUPC:    true,
				Status:        model.EventDischarged,
				FirstSeen:     model.Noon(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)),
				LastSeen:      model.Noon(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.Local)),
				DischargeDate: &discharge,
				LOS:           4,
				DaysInPeriod:  4,
				Inconsistencies: []string{
					"explicit discharge reverted due to later occupancy",
				},
			},
		},
	}

	data, err := export.Report(report, "Reporte")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, export.ReportHeader, rows[0])

	require.Equal(t, "11111111", rows[1][0])
	require.Equal(t, "Juan Perez", rows[1][1])
	require.Equal(t, "", rows[1][2]) // Age column is always blank.
	require.Equal(t, "Neumonia", rows[1][3])
	require.Equal(t, "Sí", rows[1][5])  // Pasó por UPC
	require.Equal(t, "No", rows[1][6]) // Es UPC Actualmente
	require.Equal(t, "2025-01-01", rows[1][7])
	require.Equal(t, "2025-01-05", rows[1][8])
	require.Contains(t, rows[1][13], "reverted")
}
