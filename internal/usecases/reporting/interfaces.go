package reporting

import (
	"context"

	"github.com/vfg2006/ga4-report-api/internal/domain"
)

// ReportGenerator define a interface consumida pelos handlers HTTP
type ReportGenerator interface {
	// GenerateReport executa uma sessão completa de relatório: busca mês a mês,
	// agrega e monta a planilha
	GenerateReport(ctx context.Context, input ReportInput) (*ReportResult, error)

	// Windows retorna as janelas mensais configuradas, em ordem cronológica
	Windows() []domain.MonthWindow
}

// Exporter converte a tabela de registros mensais em uma planilha serializada
type Exporter interface {
	Build(table domain.ReportTable) ([]byte, error)
}
