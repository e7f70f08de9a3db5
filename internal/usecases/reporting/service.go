package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-report-api/internal/config"
	"github.com/vfg2006/ga4-report-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportInput carrega os dois valores fornecidos pelo usuário em uma execução
type ReportInput struct {
	KeyJSON    []byte // Conteúdo do arquivo de credencial de service account
	PropertyID string // ID da propriedade do GA4
}

// ReportResult é o resultado de uma execução bem-sucedida
type ReportResult struct {
	Filename    string
	ContentType string
	Content     []byte
	Warnings    []MonthWarning // Meses que falharam e ficaram fora do relatório
}

// Service orquestra uma sessão de relatório: credencial temporária, cliente
// GA4, busca mês a mês e exportação. Não guarda estado entre execuções.
type Service struct {
	cfg           *config.Config
	windows       []domain.MonthWindow
	channelGroup  string
	clientFactory ga4client.Factory
	exporter      Exporter
}

// NewService cria o serviço de relatórios
func NewService(
	cfg *config.Config,
	windows []domain.MonthWindow,
	clientFactory ga4client.Factory,
	exporter Exporter,
) ReportGenerator {
	return &Service{
		cfg:           cfg,
		windows:       windows,
		channelGroup:  cfg.GA4.ChannelGroup,
		clientFactory: clientFactory,
		exporter:      exporter,
	}
}

// Windows retorna as janelas mensais configuradas
func (s *Service) Windows() []domain.MonthWindow {
	return s.windows
}

// GenerateReport executa uma sessão completa de relatório
func (s *Service) GenerateReport(ctx context.Context, input ReportInput) (*ReportResult, error) {
	if len(input.KeyJSON) == 0 {
		return nil, ErrMissingCredential
	}

	if strings.TrimSpace(input.PropertyID) == "" {
		return nil, ErrMissingPropertyID
	}

	credentialPath, cleanup, err := writeScopedCredential(input.KeyJSON)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	client, err := s.clientFactory(ctx, credentialPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialRejected, err)
	}

	logrus.WithFields(logrus.Fields{
		"property_id":   input.PropertyID,
		"months":        len(s.windows),
		"channel_group": s.channelGroup,
	}).Info("Iniciando busca mensal no GA4")

	table, warnings := s.fetchMonthly(ctx, client, input.PropertyID)

	logrus.WithFields(logrus.Fields{
		"property_id":    input.PropertyID,
		"months_ok":      len(table),
		"months_failed":  len(warnings),
		"months_queried": len(s.windows),
	}).Info("Busca mensal concluída")

	content, err := s.exporter.Build(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportBuild, err)
	}

	return &ReportResult{
		Filename:    s.cfg.Report.Filename,
		ContentType: xlsxContentType,
		Content:     content,
		Warnings:    warnings,
	}, nil
}
