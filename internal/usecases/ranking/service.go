// Package ranking implementa o recorte de períodos e o motor de ranking do
// painel. Todas as funções recebem o instante atual como parâmetro e não têm
// efeito colateral: o ranking é recalculado sob demanda, sem cache.
package ranking

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/pkg/utils"
)

// Roster dá acesso de leitura ao ledger de vendedores em ordem de registro.
type Roster interface {
	ListSalespeople() []*domain.Salesperson
}

// Ranker é a interface consumida pelo snapshot e pela API.
type Ranker interface {
	RankFor(period domain.Period, now time.Time) []domain.RankedEntry
	RankUpTo(period domain.Period, upper time.Time) []domain.RankedEntry
	StatsFor(period domain.Period, now time.Time) domain.PeriodStats
}

type Service struct {
	roster Roster
}

func NewService(roster Roster) *Service {
	return &Service{
		roster: roster,
	}
}

// WindowStart calcula o início da janela de um período relativo a now.
// A janela é sempre semiaberta: [WindowStart(period, now), now).
//   - daily: meia-noite local do dia de now
//   - weekly: meia-noite do domingo mais recente (semana começa no domingo)
//   - monthly: meia-noite do dia 1 do mês
//   - yearly: meia-noite de 1º de janeiro
//   - allTime: a época (janela efetivamente ilimitada)
func WindowStart(period domain.Period, now time.Time) time.Time {
	switch period {
	case domain.PeriodDaily:
		return utils.StartOfDay(now)
	case domain.PeriodWeekly:
		return utils.StartOfWeek(now)
	case domain.PeriodMonthly:
		return utils.StartOfMonth(now)
	case domain.PeriodYearly:
		return utils.StartOfYear(now)
	default:
		return time.Unix(0, 0)
	}
}

// RankFor agrega as vendas de cada vendedor dentro da janela do período,
// descarta quem não vendeu, ordena por total decrescente e atribui posição
// densa 1-based. Desempate: ordenação estável preservando a ordem de
// registro dos vendedores (primeiro registrado fica na frente).
func (s *Service) RankFor(period domain.Period, now time.Time) []domain.RankedEntry {
	return s.RankUpTo(period, now)
}

// RankUpTo é o RankFor com limite superior de janela explícito, usado pela
// reconstrução histórica do snapshot (ranking como era às 00:01 de hoje).
func (s *Service) RankUpTo(period domain.Period, upper time.Time) []domain.RankedEntry {
	start := WindowStart(period, upper)

	entries := make([]domain.RankedEntry, 0)
	for _, sp := range s.roster.ListSalespeople() {
		total, count := sp.SalesSince(start, upper)
		if total <= 0 {
			continue
		}

		entries = append(entries, domain.RankedEntry{
			SalespersonID: sp.ID,
			Name:          sp.Name,
			PeriodTotal:   total,
			PeriodCount:   count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PeriodTotal > entries[j].PeriodTotal
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

// StatsFor agrega as estatísticas do período exibidas no painel.
func (s *Service) StatsFor(period domain.Period, now time.Time) domain.PeriodStats {
	stats := domain.PeriodStats{}

	for _, entry := range s.RankFor(period, now) {
		stats.ActiveSalespeople++
		stats.SaleCount += entry.PeriodCount
		stats.TotalAmount += entry.PeriodTotal
	}

	stats.TotalAmount = utils.RoundWithTwoDecimalPlace(stats.TotalAmount)

	return stats
}

// PodiumChanged compara os três primeiros colocados de dois rankings e
// indica se houve troca de ocupante em alguma posição do pódio.
func PodiumChanged(before, after []domain.RankedEntry) bool {
	beforeTop := topThree(before)
	afterTop := topThree(after)

	if len(beforeTop) != len(afterTop) {
		return true
	}

	for i := range beforeTop {
		if beforeTop[i].SalespersonID != afterTop[i].SalespersonID {
			return true
		}
	}

	return false
}

// RankToMap converte um ranking na forma vendedor -> posição usada pelo
// snapshot diário.
func RankToMap(entries []domain.RankedEntry) map[string]int {
	ranks := make(map[string]int, len(entries))
	for _, entry := range entries {
		ranks[entry.SalespersonID] = entry.Position
	}
	return ranks
}

func topThree(entries []domain.RankedEntry) []domain.RankedEntry {
	if len(entries) > 3 {
		return entries[:3]
	}
	return entries
}
