package repository

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/storage"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
)

const (
	snapshotKeyPrefix   = "snapshot"
	lastVerifiedDateKey = "last_verified_date"
	debugTrendsKey      = "debug_trends"
)

// SnapshotRepository persiste os snapshots diários, o marcador de último dia
// verificado e a flag de depuração de tendências.
type SnapshotRepository interface {
	GetByDate(date string) (*domain.DailySnapshot, error)
	Save(snapshot *domain.DailySnapshot) error
	LastVerifiedDate() (string, error)
	SetLastVerifiedDate(date string) error
	DebugTrends() bool
	SetDebugTrends(enabled bool) error
}

type snapshotRepository struct {
	store *storage.LocalStore
}

func NewSnapshotRepository(store *storage.LocalStore) SnapshotRepository {
	return &snapshotRepository{
		store: store,
	}
}

// GetByDate busca o snapshot do dia civil informado (yyyy-mm-dd).
// Retorna nil sem erro quando o dia ainda não tem snapshot.
func (r *snapshotRepository) GetByDate(date string) (*domain.DailySnapshot, error) {
	var snapshot domain.DailySnapshot

	found, err := r.store.Get(snapshotKey(date), &snapshot)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &snapshot, nil
}

// Save grava o snapshot sob a chave do seu dia civil. Snapshots de dias
// anteriores nunca são tocados por esta operação.
func (r *snapshotRepository) Save(snapshot *domain.DailySnapshot) error {
	return r.store.Put(snapshotKey(snapshot.Date), snapshot)
}

// LastVerifiedDate retorna o marcador do último dia em que a virada foi
// verificada; vazio quando o sistema nunca rodou.
func (r *snapshotRepository) LastVerifiedDate() (string, error) {
	var date string

	found, err := r.store.Get(lastVerifiedDateKey, &date)
	if err != nil {
		return "", err
	}

	if !found {
		return "", nil
	}

	return date, nil
}

func (r *snapshotRepository) SetLastVerifiedDate(date string) error {
	return r.store.Put(lastVerifiedDateKey, date)
}

// DebugTrends lê a flag persistida de log detalhado do cálculo de tendência.
// Qualquer falha de leitura é tratada como flag desligada.
func (r *snapshotRepository) DebugTrends() bool {
	var enabled bool

	found, err := r.store.Get(debugTrendsKey, &enabled)
	if err != nil {
		logrus.WithError(err).Debug("Flag de debug de tendências ilegível, assumindo desligada")
		return false
	}

	return found && enabled
}

func (r *snapshotRepository) SetDebugTrends(enabled bool) error {
	return r.store.Put(debugTrendsKey, enabled)
}

func snapshotKey(date string) string {
	return fmt.Sprintf("%s_%s", snapshotKeyPrefix, date)
}
