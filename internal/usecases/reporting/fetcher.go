package reporting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	ga4domain "github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-report-api/internal/domain"
)

// Dimensão de agrupamento de canal usada em todas as consultas
const channelDimension = "sessionDefaultChannelGrouping"

// MonthWarning registra a falha de busca de um mês. O mês fica fora da tabela
// e os demais continuam sendo buscados.
type MonthWarning struct {
	Month string
	Year  int
	Err   error
}

func (w MonthWarning) String() string {
	return fmt.Sprintf("%s %d: %v", w.Month, w.Year, w.Err)
}

// fetchMonthly percorre as janelas configuradas em ordem, uma consulta por mês.
// Melhor esforço: falhas viram avisos e o loop segue até a última janela.
func (s *Service) fetchMonthly(
	ctx context.Context,
	client ga4client.Client,
	propertyID string,
) (domain.ReportTable, []MonthWarning) {
	table := make(domain.ReportTable, 0, len(s.windows))
	var warnings []MonthWarning

	for _, window := range s.windows {
		record, err := s.fetchWindow(ctx, client, propertyID, window)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"property_id": propertyID,
				"month":       window.Label,
				"year":        window.Year,
			}).Warn("Falha ao buscar dados do mês, seguindo para o próximo")

			warnings = append(warnings, MonthWarning{Month: window.Label, Year: window.Year, Err: err})
			continue
		}

		table = append(table, record)
	}

	return table, warnings
}

// fetchWindow executa a consulta de uma janela e agrega as linhas retornadas
func (s *Service) fetchWindow(
	ctx context.Context,
	client ga4client.Client,
	propertyID string,
	window domain.MonthWindow,
) (domain.MonthlyRecord, error) {
	response, err := client.RunReport(ctx, propertyID, s.buildRequest(window))
	if err != nil {
		return domain.MonthlyRecord{}, err
	}

	return sumRows(window, response.Rows)
}

// buildRequest monta a consulta do mês: métricas e filtro fixos, apenas o
// intervalo de datas varia entre as chamadas
func (s *Service) buildRequest(window domain.MonthWindow) *ga4domain.RunReportRequest {
	return &ga4domain.RunReportRequest{
		DateRanges: []ga4domain.DateRange{
			{
				StartDate: window.StartDate.Format(time.DateOnly),
				EndDate:   window.EndDate.Format(time.DateOnly),
			},
		},
		Metrics: []ga4domain.Metric{
			{Name: "sessions"},
			{Name: "engagedSessions"},
			{Name: "totalUsers"},
		},
		Dimensions: []ga4domain.Dimension{
			{Name: channelDimension},
		},
		DimensionFilter: &ga4domain.FilterExpression{
			Filter: &ga4domain.Filter{
				FieldName: channelDimension,
				StringFilter: &ga4domain.StringFilter{
					Value: s.channelGroup,
				},
			},
		},
	}
}

type parsedRow struct {
	sessions        int
	engagedSessions int
	totalUsers      int
}

// sumRows soma cada métrica em todas as linhas retornadas para o mês. Um mês
// pode retornar zero ou várias linhas; zero linhas gera um registro zerado.
func sumRows(window domain.MonthWindow, rows []ga4domain.Row) (domain.MonthlyRecord, error) {
	parsed := make([]parsedRow, 0, len(rows))
	for _, row := range rows {
		if len(row.MetricValues) < 3 {
			return domain.MonthlyRecord{}, errors.Errorf(
				"resposta do GA4 com %d valores de métrica, esperados 3", len(row.MetricValues),
			)
		}

		sessions, err := strconv.Atoi(row.MetricValues[0].Value)
		if err != nil {
			return domain.MonthlyRecord{}, errors.Wrap(err, "valor de sessions não numérico")
		}

		engagedSessions, err := strconv.Atoi(row.MetricValues[1].Value)
		if err != nil {
			return domain.MonthlyRecord{}, errors.Wrap(err, "valor de engagedSessions não numérico")
		}

		totalUsers, err := strconv.Atoi(row.MetricValues[2].Value)
		if err != nil {
			return domain.MonthlyRecord{}, errors.Wrap(err, "valor de totalUsers não numérico")
		}

		parsed = append(parsed, parsedRow{
			sessions:        sessions,
			engagedSessions: engagedSessions,
			totalUsers:      totalUsers,
		})
	}

	return domain.MonthlyRecord{
		MonthLabel:      window.Label,
		Year:            window.Year,
		Sessions:        lo.SumBy(parsed, func(r parsedRow) int { return r.sessions }),
		EngagedSessions: lo.SumBy(parsed, func(r parsedRow) int { return r.engagedSessions }),
		TotalUsers:      lo.SumBy(parsed, func(r parsedRow) int { return r.totalUsers }),
	}, nil
}
