// Package snapshotting mantém o snapshot diário de referência: as baselines
// de progresso do próprio dia e os rankings dos períodos não diários no
// momento da captura. O snapshot é criado de forma preguiçosa no primeiro
// uso de cada dia civil e só é substituído pela virada do dia ou por uma
// reancoragem manual explícita.
package snapshotting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-ranking-api/pkg/utils"
)

type Service struct {
	mu     sync.Mutex
	repo   repository.SnapshotRepository
	ranker ranking.Ranker
	roster ranking.Roster
}

func NewService(
	repo repository.SnapshotRepository,
	ranker ranking.Ranker,
	roster ranking.Roster,
) *Service {
	return &Service{
		repo:   repo,
		ranker: ranker,
		roster: roster,
	}
}

// VerifyDayRollover garante que o dia civil de now tem snapshot e que o
// marcador de último dia verificado está atualizado. Chamado no boot e pelo
// agendador; é idempotente e nunca sobrescreve um snapshot já existente.
func (s *Service) VerifyDayRollover(now time.Time) (created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.DateKey(now)

	lastVerified, err := s.repo.LastVerifiedDate()
	if err != nil {
		logrus.WithError(err).Warn("Marcador de último dia verificado ilegível")
		lastVerified = ""
	}

	snapshot, err := s.repo.GetByDate(today)
	if err != nil {
		// Snapshot corrompido conta como ausente e será recapturado.
		logrus.WithError(err).Warn("Snapshot de hoje ilegível, recapturando")
		snapshot = nil
	}

	if snapshot != nil && lastVerified == today {
		return false, nil
	}

	if snapshot == nil {
		snapshot = s.buildSnapshot(now)
		if err := s.repo.Save(snapshot); err != nil {
			return false, err
		}
		created = true

		logrus.WithFields(logrus.Fields{
			"date":        today,
			"salespeople": len(snapshot.Baselines),
		}).Info("Snapshot diário capturado")
	}

	if lastVerified != today {
		if err := s.repo.SetLastVerifiedDate(today); err != nil {
			logrus.WithError(err).Error("Erro ao atualizar marcador de último dia verificado")
		}
	}

	return created, nil
}

// EnsureDailyBaseline recalcula as baselines do dia quando o vendedor ainda
// não tem entrada na baseline de hoje. Os rankings capturados no snapshot
// não são tocados.
func (s *Service) EnsureDailyBaseline(salespersonID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.DateKey(now)

	snapshot, err := s.repo.GetByDate(today)
	if err != nil {
		logrus.WithError(err).Warn("Snapshot de hoje ilegível ao atualizar baseline")
		snapshot = nil
	}

	if snapshot == nil {
		snapshot = s.buildSnapshot(now)
	} else {
		if _, exists := snapshot.Baselines[salespersonID]; exists {
			return
		}
		snapshot.Baselines = s.buildBaselines(now)
	}

	if err := s.repo.Save(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao persistir baseline diária")
		return
	}

	logrus.WithFields(logrus.Fields{
		"salesperson_id": salespersonID,
		"date":           today,
	}).Debug("Baseline diária recalculada")
}

// RanksAsOf0001 reconstrói os rankings dos períodos não diários restringindo
// a janela de vendas até 00:01 do dia civil de now: "como estava o ranking um
// minuto depois da meia-noite".
func (s *Service) RanksAsOf0001(now time.Time) map[domain.Period]map[string]int {
	asOf := utils.StartOfDay(now).Add(time.Minute)

	rankings := make(map[domain.Period]map[string]int, len(domain.SnapshotPeriods()))
	for _, period := range domain.SnapshotPeriods() {
		rankings[period] = ranking.RankToMap(s.ranker.RankUpTo(period, asOf))
	}

	return rankings
}

// Reanchor substitui os rankings do snapshot de hoje pela reconstrução das
// 00:01, sem mexer nas baselines. Operação explícita do usuário, útil quando
// o snapshot preguiçoso foi capturado tarde demais.
func (s *Service) Reanchor(now time.Time) (*domain.DailySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.DateKey(now)

	snapshot, err := s.repo.GetByDate(today)
	if err != nil {
		logrus.WithError(err).Warn("Snapshot de hoje ilegível ao reancorar")
		snapshot = nil
	}

	if snapshot == nil {
		snapshot = s.buildSnapshot(now)
	}

	snapshot.Rankings = s.RanksAsOf0001(now)

	if err := s.repo.Save(snapshot); err != nil {
		return nil, err
	}

	logrus.WithField("date", today).Info("Snapshot reancorado para as 00:01")

	return snapshot, nil
}

// CurrentSnapshot retorna o snapshot do dia de now, se existir.
func (s *Service) CurrentSnapshot(now time.Time) (*domain.DailySnapshot, error) {
	return s.repo.GetByDate(utils.DateKey(now))
}

func (s *Service) buildSnapshot(now time.Time) *domain.DailySnapshot {
	rankings := make(map[domain.Period]map[string]int, len(domain.SnapshotPeriods()))
	for _, period := range domain.SnapshotPeriods() {
		rankings[period] = ranking.RankToMap(s.ranker.RankFor(period, now))
	}

	return &domain.DailySnapshot{
		Date:      utils.DateKey(now),
		Baselines: s.buildBaselines(now),
		Rankings:  rankings,
		CreatedAt: now,
	}
}

// buildBaselines captura o progresso de hoje de cada vendedor, inclusive
// quem ainda não vendeu (baseline zerada).
func (s *Service) buildBaselines(now time.Time) map[string]domain.DailyBaseline {
	startOfDay := utils.StartOfDay(now)

	baselines := make(map[string]domain.DailyBaseline)
	for _, sp := range s.roster.ListSalespeople() {
		total, count := sp.SalesSince(startOfDay, now)
		baselines[sp.ID] = domain.DailyBaseline{
			TotalAtStartOfDay: total,
			CountAtStartOfDay: count,
		}
	}

	return baselines
}
