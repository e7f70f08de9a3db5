package domain

import (
	"fmt"
	"math"

	"github.com/vfg2006/ga4-report-api/pkg/utils"
)

// ChangeType classifica a variação mês a mês de uma métrica
type ChangeType string

const (
	Improvement ChangeType = "improvement"
	Drop        ChangeType = "drop"
)

// Nomes das métricas como aparecem no cabeçalho do relatório
const (
	MetricSessions        = "Sessions"
	MetricEngagedSessions = "Engaged Sessions"
	MetricUsers           = "Users"
)

// InsightStatement é uma frase de destaque derivada dos dois últimos registros
// da tabela. Calculada no momento da renderização, nunca persistida.
type InsightStatement struct {
	Metric           string
	PercentageChange float64
	Change           ChangeType

	// Partes da frase: o trecho colorido fica entre o início e o restante
	LeadIn        string
	ColoredPhrase string
	Remainder     string
}

// Sentence retorna a frase completa, sem formatação
func (s InsightStatement) Sentence() string {
	return s.LeadIn + s.ColoredPhrase + s.Remainder
}

// PercentageChange calcula a variação percentual entre dois valores.
// Quando o valor anterior é zero, a variação é definida como zero em vez de erro.
func PercentageChange(previous, current int) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(current-previous) / float64(previous) * 100)
}

// ClassifyChange considera melhora apenas variação estritamente positiva.
// Variação zero é classificada como queda, comportamento herdado do relatório
// original e fixado em teste.
func ClassifyChange(pct float64) ChangeType {
	if pct > 0 {
		return Improvement
	}

	return Drop
}

// HighlightsTitle monta o título do bloco de destaques, ex: "Highlights - Dec'24 vs Nov'24"
func HighlightsTitle(previous, current MonthlyRecord) string {
	return fmt.Sprintf(
		"Highlights - %s'%s vs %s'%s",
		current.MonthLabel, current.ShortYear(),
		previous.MonthLabel, previous.ShortYear(),
	)
}

// BuildInsightStatements gera uma frase por métrica comparando os dois meses
// mais recentes da tabela. Retorna nil quando há menos de dois registros.
func BuildInsightStatements(table ReportTable) []InsightStatement {
	previous, current, ok := table.LastTwo()
	if !ok {
		return nil
	}

	metrics := []struct {
		name     string
		previous int
		current  int
	}{
		{MetricSessions, previous.Sessions, current.Sessions},
		{MetricEngagedSessions, previous.EngagedSessions, current.EngagedSessions},
		{MetricUsers, previous.TotalUsers, current.TotalUsers},
	}

	statements := make([]InsightStatement, 0, len(metrics))
	for _, metric := range metrics {
		pct := PercentageChange(metric.previous, metric.current)
		change := ClassifyChange(pct)

		statements = append(statements, InsightStatement{
			Metric:           metric.name,
			PercentageChange: pct,
			Change:           change,
			LeadIn:           "We have observed a ",
			ColoredPhrase:    fmt.Sprintf("%s of %.2f%%", change, math.Abs(pct)),
			Remainder: fmt.Sprintf(
				" in %s in %s compared to %s.",
				metric.name, current.MonthLabel, previous.MonthLabel,
			),
		})
	}

	return statements
}
