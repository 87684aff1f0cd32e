package domain

import "fmt"

// Period representa um período de apuração do ranking.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAllTime Period = "allTime"
)

// AllPeriods lista os períodos na ordem de rotação do painel.
func AllPeriods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAllTime}
}

// SnapshotPeriods lista os períodos que participam do snapshot diário.
// O período diário fica de fora: a tabela diária mostra o valor da última
// venda no lugar da seta de tendência.
func SnapshotPeriods() []Period {
	return []Period{PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAllTime}
}

// ParsePeriod valida e converte uma string de período vinda da API.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAllTime:
		return Period(s), nil
	}
	return "", fmt.Errorf("período inválido: %q", s)
}

// RankedEntry representa a posição de um vendedor dentro de um período.
// Só existe para vendedores com PeriodTotal > 0; Position é 1-based e densa.
type RankedEntry struct {
	SalespersonID string  `json:"salesperson_id"`
	Name          string  `json:"name"`
	PeriodTotal   float64 `json:"period_total"`
	PeriodCount   int     `json:"period_count"`
	Position      int     `json:"position"`
}

// PeriodStats agrega as estatísticas exibidas no painel para um período.
type PeriodStats struct {
	ActiveSalespeople int     `json:"active_salespeople"`
	SaleCount         int     `json:"sale_count"`
	TotalAmount       float64 `json:"total_amount"`
}
