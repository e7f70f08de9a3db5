package excel

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ga4-report-api/internal/config"
	"github.com/vfg2006/ga4-report-api/internal/domain"
)

func testBuilder() *Builder {
	return NewBuilder(&config.Config{
		Report: config.Report{
			SheetName:   "GA4 Data",
			ColumnWidth: 15,
		},
	})
}

func openSheet(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func sampleTable(n int) domain.ReportTable {
	labels := []string{"Apr", "May", "Jun", "Jul"}
	table := make(domain.ReportTable, 0, n)
	for i := 0; i < n; i++ {
		table = append(table, domain.MonthlyRecord{
			MonthLabel:      labels[i],
			Year:            2024,
			Sessions:        100 * (i + 1),
			EngagedSessions: 80 * (i + 1),
			TotalUsers:      60 * (i + 1),
		})
	}
	return table
}

func TestBuild_Header(t *testing.T) {
	content, err := testBuilder().Build(nil)
	require.NoError(t, err)

	f := openSheet(t, content)

	rows, err := f.GetRows("GA4 Data")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Month", "Sessions", "Engaged Sessions", "Users"}, rows[0])
}

func TestBuild_DataRows(t *testing.T) {
	content, err := testBuilder().Build(sampleTable(1))
	require.NoError(t, err)

	f := openSheet(t, content)

	rows, err := f.GetRows("GA4 Data")
	require.NoError(t, err)

	// Um registro só: dados sem bloco de destaques
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Apr", "100", "80", "60"}, rows[1])
}

func TestBuild_Highlights(t *testing.T) {
	table := domain.ReportTable{
		{MonthLabel: "Nov", Year: 2024, Sessions: 100, EngagedSessions: 80, TotalUsers: 0},
		{MonthLabel: "Dec", Year: 2024, Sessions: 150, EngagedSessions: 60, TotalUsers: 50},
	}

	content, err := testBuilder().Build(table)
	require.NoError(t, err)

	f := openSheet(t, content)

	// Linha em branco entre os dados e o título do bloco
	blank, err := f.GetCellValue("GA4 Data", "A4")
	require.NoError(t, err)
	assert.Empty(t, blank)

	title, err := f.GetCellValue("GA4 Data", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Highlights - Dec'24 vs Nov'24", title)

	expectedLines := []string{
		"We have observed a improvement of 50.00% in Sessions in Dec compared to Nov.",
		"We have observed a drop of 25.00% in Engaged Sessions in Dec compared to Nov.",
		"We have observed a drop of 0.00% in Users in Dec compared to Nov.",
	}

	for i, expected := range expectedLines {
		cell := fmt.Sprintf("A%d", 6+i)
		line, err := f.GetCellValue("GA4 Data", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, line)
	}

	// Trecho colorido da primeira frase é uma run separada em negrito
	runs, err := f.GetCellRichText("GA4 Data", "A6")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "improvement of 50.00%", runs[1].Text)
	assert.True(t, runs[1].Font.Bold)
}

func TestBuild_RowCounts(t *testing.T) {
	tests := []struct {
		name         string
		records      int
		expectedRows int
	}{
		{
			name:         "Tabela vazia só tem cabeçalho",
			records:      0,
			expectedRows: 1,
		},
		{
			name:         "Um registro não gera destaques",
			records:      1,
			expectedRows: 2,
		},
		{
			name:         "Dois registros geram bloco de destaques",
			records:      2,
			expectedRows: 2 + 1 + 1 + 1 + 3, // cabeçalho, dados, branco, título, 3 frases
		},
		{
			name:         "Três registros mantêm três frases",
			records:      3,
			expectedRows: 3 + 1 + 1 + 1 + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := testBuilder().Build(sampleTable(tt.records))
			require.NoError(t, err)

			f := openSheet(t, content)

			rows, err := f.GetRows("GA4 Data")
			require.NoError(t, err)
			assert.Len(t, rows, tt.expectedRows)
		})
	}
}

func TestBuild_ColorScales(t *testing.T) {
	content, err := testBuilder().Build(sampleTable(3))
	require.NoError(t, err)

	f := openSheet(t, content)

	formats, err := f.GetConditionalFormats("GA4 Data")
	require.NoError(t, err)

	// Uma escala por coluna de métrica, restrita às linhas de dados
	require.Len(t, formats, 3)
	for _, ref := range []string{"B2:B4", "C2:C4", "D2:D4"} {
		options, ok := formats[ref]
		require.True(t, ok, "escala ausente para %s", ref)
		require.Len(t, options, 1)
		assert.Equal(t, "3_color_scale", options[0].Type)
	}
}

func TestBuild_NoColorScaleOnEmptyTable(t *testing.T) {
	content, err := testBuilder().Build(nil)
	require.NoError(t, err)

	f := openSheet(t, content)

	formats, err := f.GetConditionalFormats("GA4 Data")
	require.NoError(t, err)
	assert.Empty(t, formats)
}
