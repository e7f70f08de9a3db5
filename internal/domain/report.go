package domain

import "fmt"

// MonthlyRecord guarda as somas das métricas de um mês buscado com sucesso.
// Nunca é alterado depois de criado; meses com falha de busca não geram registro.
type MonthlyRecord struct {
	MonthLabel      string `json:"month"`
	Year            int    `json:"year"`
	Sessions        int    `json:"sessions"`
	EngagedSessions int    `json:"engaged_sessions"`
	TotalUsers      int    `json:"total_users"`
}

// ShortYear retorna o sufixo de dois dígitos do ano ('24 no relatório)
func (r MonthlyRecord) ShortYear() string {
	return fmt.Sprintf("%02d", r.Year%100)
}

// ReportTable é a sequência ordenada de registros mensais consumida pelo
// gerador da planilha. A ordem de inserção segue a ordem cronológica das janelas.
type ReportTable []MonthlyRecord

// LastTwo retorna os dois registros mais recentes da tabela, quando existem
func (t ReportTable) LastTwo() (previous, current MonthlyRecord, ok bool) {
	if len(t) < 2 {
		return MonthlyRecord{}, MonthlyRecord{}, false
	}

	return t[len(t)-2], t[len(t)-1], true
}
