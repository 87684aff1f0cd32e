// Package trending calcula o indicador de tendência de cada vendedor por
// período, comparando a posição atual com a posição registrada no snapshot
// diário. No período diário a tabela mostra o valor da última venda no lugar
// da seta.
package trending

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/pkg/utils"
)

// Roster dá acesso ao vendedor para o caso diário (última venda).
type Roster interface {
	FindSalesperson(salespersonID string) *domain.Salesperson
}

type Service struct {
	repo   repository.SnapshotRepository
	roster Roster
}

func NewService(repo repository.SnapshotRepository, roster Roster) *Service {
	return &Service{
		repo:   repo,
		roster: roster,
	}
}

// TrendFor classifica a tendência do vendedor no período.
//
// Subir no ranking é DIMINUIR o número da posição (1º lugar é o melhor):
// Up carrega positions = posiçãoSnapshot - posiçãoAtual, Down o inverso.
// Vendedor sem posição no snapshot é New; posições iguais, Unchanged.
func (s *Service) TrendFor(salespersonID string, currentRank int, period domain.Period, now time.Time) domain.TrendResult {
	if period == domain.PeriodDaily {
		return s.latestSaleTrend(salespersonID)
	}

	snapshot, err := s.repo.GetByDate(utils.DateKey(now))
	if err != nil {
		logrus.WithError(err).Warn("Snapshot ilegível no cálculo de tendência")
		snapshot = nil
	}

	previousRank, hasPrevious := snapshot.RankAt(period, salespersonID)

	result := domain.TrendResult{Kind: domain.TrendNew}
	switch {
	case !hasPrevious:
		// mantém New
	case currentRank < previousRank:
		result = domain.TrendResult{Kind: domain.TrendUp, Positions: previousRank - currentRank}
	case currentRank > previousRank:
		result = domain.TrendResult{Kind: domain.TrendDown, Positions: currentRank - previousRank}
	default:
		result = domain.TrendResult{Kind: domain.TrendUnchanged}
	}

	s.debugLog(salespersonID, period, currentRank, previousRank, hasPrevious, result, snapshot)

	return result
}

// latestSaleTrend retorna o valor da venda mais recente do vendedor, ou
// indicador vazio se ele ainda não vendeu.
func (s *Service) latestSaleTrend(salespersonID string) domain.TrendResult {
	salesperson := s.roster.FindSalesperson(salespersonID)
	if salesperson == nil {
		return domain.TrendResult{Kind: domain.TrendNone}
	}

	latest := salesperson.LatestSale()
	if latest == nil {
		return domain.TrendResult{Kind: domain.TrendNone}
	}

	return domain.TrendResult{Kind: domain.TrendLatestSale, Amount: latest.Amount}
}

// debugLog emite o passo a passo do cálculo quando a flag persistida de
// depuração de tendências está ligada.
func (s *Service) debugLog(
	salespersonID string,
	period domain.Period,
	currentRank int,
	previousRank int,
	hasPrevious bool,
	result domain.TrendResult,
	snapshot *domain.DailySnapshot,
) {
	if !s.repo.DebugTrends() {
		return
	}

	entry := logrus.WithFields(logrus.Fields{
		"salesperson_id": salespersonID,
		"period":         period,
		"current_rank":   currentRank,
		"previous_rank":  previousRank,
		"has_previous":   hasPrevious,
		"kind":           result.Kind,
		"positions":      result.Positions,
	})

	if snapshot != nil {
		entry = entry.WithField("snapshot_ranks", utils.PrettyJson(snapshot.Rankings[period]))
	}

	entry.Debug("Cálculo de tendência")
}
