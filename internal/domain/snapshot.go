package domain

import "time"

// DailyBaseline guarda o progresso do próprio dia de um vendedor no momento
// em que o snapshot foi capturado.
type DailyBaseline struct {
	TotalAtStartOfDay float64 `json:"total_at_start_of_day"`
	CountAtStartOfDay int     `json:"count_at_start_of_day"`
}

// DailySnapshot é o registro de referência capturado uma vez por dia civil.
// É a única base de comparação para as setas de tendência até a virada do
// dia ou uma reancoragem manual.
type DailySnapshot struct {
	Date      string                    `json:"date"` // formato yyyy-mm-dd
	Baselines map[string]DailyBaseline  `json:"baselines"`
	Rankings  map[Period]map[string]int `json:"rankings"` // períodos exceto daily
	CreatedAt time.Time                 `json:"created_at"`
}

// RankAt retorna a posição registrada no snapshot para o vendedor no
// período informado; ok indica se o vendedor estava presente no ranking.
func (s *DailySnapshot) RankAt(period Period, salespersonID string) (int, bool) {
	if s == nil || s.Rankings == nil {
		return 0, false
	}
	ranks, exists := s.Rankings[period]
	if !exists {
		return 0, false
	}
	rank, ok := ranks[salespersonID]
	return rank, ok
}
