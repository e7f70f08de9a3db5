package excel

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ga4-report-api/internal/config"
	"github.com/vfg2006/ga4-report-api/internal/domain"
)

// Cores do relatório, herdadas do layout original da planilha
const (
	headerFillColor  = "1F4E78"
	headerFontColor  = "FFFFFF"
	improvementColor = "006400"
	dropColor        = "FF0000"

	scaleMinColor = "#F8696B"
	scaleMidColor = "#FFEB84"
	scaleMaxColor = "#63BE7B"
)

var headers = []string{"Month", domain.MetricSessions, domain.MetricEngagedSessions, domain.MetricUsers}

// Builder monta a planilha do relatório com excelize
type Builder struct {
	sheetName   string
	columnWidth float64
}

// NewBuilder cria o montador de planilhas a partir da configuração
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		sheetName:   cfg.Report.SheetName,
		columnWidth: cfg.Report.ColumnWidth,
	}
}

// Build renderiza a tabela em uma única passada: cabeçalho, uma linha por mês,
// bloco de destaques quando há pelo menos dois meses, escala de cores por
// coluna de métrica e largura uniforme. Retorna os bytes do arquivo xlsx.
func (b *Builder) Build(table domain.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", b.sheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao nomear a aba")
	}

	if err := b.writeHeader(f); err != nil {
		return nil, err
	}

	if err := b.writeDataRows(f, table); err != nil {
		return nil, err
	}

	if err := b.writeHighlights(f, table); err != nil {
		return nil, err
	}

	if err := b.applyColorScales(f, len(table)); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(b.sheetName, "A", "D", b.columnWidth); err != nil {
		return nil, errors.Wrap(err, "erro ao definir a largura das colunas")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a planilha")
	}

	return buffer.Bytes(), nil
}

func (b *Builder) writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar o estilo do cabeçalho")
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(b.sheetName, cell, header); err != nil {
			return errors.Wrap(err, "erro ao escrever o cabeçalho")
		}
	}

	return f.SetCellStyle(b.sheetName, "A1", "D1", style)
}

func (b *Builder) writeDataRows(f *excelize.File, table domain.ReportTable) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar o estilo das células de dados")
	}

	for i, record := range table {
		row := i + 2
		values := []any{record.MonthLabel, record.Sessions, record.EngagedSessions, record.TotalUsers}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(b.sheetName, cell, value); err != nil {
				return errors.Wrap(err, "erro ao escrever a linha de dados")
			}
		}

		first, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		last, err := excelize.CoordinatesToCellName(len(values), row)
		if err != nil {
			return err
		}

		if err := f.SetCellStyle(b.sheetName, first, last, style); err != nil {
			return errors.Wrap(err, "erro ao aplicar o estilo das células de dados")
		}
	}

	return nil
}

// writeHighlights escreve o bloco de destaques comparando os dois meses mais
// recentes: uma linha em branco após os dados, o título e uma frase colorida
// por métrica. Com menos de dois meses o bloco é omitido.
func (b *Builder) writeHighlights(f *excelize.File, table domain.ReportTable) error {
	statements := domain.BuildInsightStatements(table)
	if statements == nil {
		return nil
	}

	previous, current, _ := table.LastTwo()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar o estilo do título de destaques")
	}

	// Linha em branco entre os dados e o bloco de destaques
	titleRow := len(table) + 3

	titleCell, err := excelize.CoordinatesToCellName(1, titleRow)
	if err != nil {
		return err
	}

	if err := f.SetCellValue(b.sheetName, titleCell, domain.HighlightsTitle(previous, current)); err != nil {
		return errors.Wrap(err, "erro ao escrever o título de destaques")
	}

	if err := f.SetCellStyle(b.sheetName, titleCell, titleCell, titleStyle); err != nil {
		return errors.Wrap(err, "erro ao aplicar o estilo do título de destaques")
	}

	for i, statement := range statements {
		cell, err := excelize.CoordinatesToCellName(1, titleRow+1+i)
		if err != nil {
			return err
		}

		phraseColor := improvementColor
		if statement.Change == domain.Drop {
			phraseColor = dropColor
		}

		runs := []excelize.RichTextRun{
			{Text: statement.LeadIn},
			{Text: statement.ColoredPhrase, Font: &excelize.Font{Bold: true, Color: phraseColor}},
			{Text: statement.Remainder},
		}

		if err := f.SetCellRichText(b.sheetName, cell, runs); err != nil {
			return errors.Wrap(err, "erro ao escrever a frase de destaque")
		}
	}

	return nil
}

// applyColorScales aplica a escala de três cores em cada coluna de métrica,
// restrita exatamente às linhas de dados
func (b *Builder) applyColorScales(f *excelize.File, rowCount int) error {
	if rowCount == 0 {
		return nil
	}

	options := []excelize.ConditionalFormatOptions{
		{
			Type:     "3_color_scale",
			Criteria: "=",
			MinType:  "min",
			MidType:  "percentile",
			MidValue: "50",
			MaxType:  "max",
			MinColor: scaleMinColor,
			MidColor: scaleMidColor,
			MaxColor: scaleMaxColor,
		},
	}

	for col := 2; col <= len(headers); col++ {
		first, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}

		last, err := excelize.CoordinatesToCellName(col, rowCount+1)
		if err != nil {
			return err
		}

		ref := first + ":" + last
		if err := f.SetConditionalFormat(b.sheetName, ref, options); err != nil {
			return errors.Wrap(err, "erro ao aplicar a escala de cores")
		}
	}

	return nil
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
