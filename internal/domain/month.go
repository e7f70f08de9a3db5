package domain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ga4-report-api/pkg/utils"
)

// MonthWindow representa uma janela de um mês de calendário para consulta no GA4
type MonthWindow struct {
	Label     string    // Nome curto do mês (Apr, May, ...)
	Year      int
	StartDate time.Time // Primeiro dia do mês
	EndDate   time.Time // Último dia do mês
}

// NewMonthWindow cria uma janela a partir do primeiro dia de um mês
func NewMonthWindow(firstDay time.Time) MonthWindow {
	return MonthWindow{
		Label:     firstDay.Format("Jan"),
		Year:      firstDay.Year(),
		StartDate: firstDay,
		EndDate:   utils.EndOfMonth(firstDay),
	}
}

// MonthWindowsFromPeriods converte a lista de períodos YYYY-MM configurada
// em janelas ordenadas. A ordem de entrada é preservada.
func MonthWindowsFromPeriods(periods []string) ([]MonthWindow, error) {
	if len(periods) == 0 {
		return nil, errors.New("nenhum período de relatório configurado")
	}

	windows := make([]MonthWindow, 0, len(periods))
	for _, period := range periods {
		firstDay, err := utils.ParseMonth(period)
		if err != nil {
			return nil, errors.Wrapf(err, "período inválido na configuração: %q", period)
		}

		windows = append(windows, NewMonthWindow(firstDay))
	}

	return windows, nil
}
