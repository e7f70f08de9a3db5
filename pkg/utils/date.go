package utils

import "time"

// ParseMonth interpreta um período no formato YYYY-MM e retorna o primeiro dia do mês
func ParseMonth(period string) (time.Time, error) {
	return time.Parse("2006-01", period)
}

// EndOfMonth retorna o último dia do calendário do mês da data informada
func EndOfMonth(date time.Time) time.Time {
	firstDay := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return firstDay.AddDate(0, 1, -1)
}
