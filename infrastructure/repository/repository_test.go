package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ranking-api/infrastructure/storage"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newStore(t *testing.T) (*storage.LocalStore, string) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestLedgerRepository(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	t.Run("salva e carrega o ledger completo", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewLedgerRepository(store)

		salespeople := []*domain.Salesperson{
			{
				ID:           "ana",
				Name:         "Ana",
				RegisteredAt: now,
				Sales: []domain.Sale{
					{ID: "s1", Amount: 1500.50, OccurredAt: now},
				},
			},
		}

		require.NoError(t, repo.Save(salespeople))

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Ana", loaded[0].Name)
		require.Len(t, loaded[0].Sales, 1)
		assert.Equal(t, 1500.50, loaded[0].Sales[0].Amount)
		assert.True(t, now.Equal(loaded[0].Sales[0].OccurredAt))
	})

	t.Run("ledger ausente carrega vazio", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewLedgerRepository(store)

		loaded, err := repo.Load()

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("documento corrompido carrega vazio sem falhar", func(t *testing.T) {
		store, dir := newStore(t)
		repo := NewLedgerRepository(store)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "salespeople.json"), []byte("[{corrompido"), 0o644))

		loaded, err := repo.Load()

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestSnapshotRepository(t *testing.T) {
	now := time.Date(2024, 1, 17, 0, 1, 0, 0, time.UTC)

	t.Run("salva e busca snapshot pelo dia civil", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewSnapshotRepository(store)

		snapshot := &domain.DailySnapshot{
			Date: "2024-01-17",
			Baselines: map[string]domain.DailyBaseline{
				"ana": {TotalAtStartOfDay: 100, CountAtStartOfDay: 1},
			},
			Rankings: map[domain.Period]map[string]int{
				domain.PeriodWeekly: {"ana": 1},
			},
			CreatedAt: now,
		}

		require.NoError(t, repo.Save(snapshot))

		loaded, err := repo.GetByDate("2024-01-17")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, snapshot.Baselines, loaded.Baselines)
		assert.Equal(t, snapshot.Rankings, loaded.Rankings)
	})

	t.Run("dia sem snapshot retorna nil sem erro", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewSnapshotRepository(store)

		loaded, err := repo.GetByDate("2024-01-17")

		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("snapshots de dias distintos não se sobrescrevem", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewSnapshotRepository(store)

		require.NoError(t, repo.Save(&domain.DailySnapshot{Date: "2024-01-16"}))
		require.NoError(t, repo.Save(&domain.DailySnapshot{Date: "2024-01-17"}))

		yesterday, err := repo.GetByDate("2024-01-16")
		require.NoError(t, err)
		require.NotNil(t, yesterday)
		assert.Equal(t, "2024-01-16", yesterday.Date)
	})

	t.Run("marcador de último dia verificado", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewSnapshotRepository(store)

		date, err := repo.LastVerifiedDate()
		require.NoError(t, err)
		assert.Empty(t, date)

		require.NoError(t, repo.SetLastVerifiedDate("2024-01-17"))

		date, err = repo.LastVerifiedDate()
		require.NoError(t, err)
		assert.Equal(t, "2024-01-17", date)
	})

	t.Run("flag de debug de tendências", func(t *testing.T) {
		store, _ := newStore(t)
		repo := NewSnapshotRepository(store)

		assert.False(t, repo.DebugTrends())

		require.NoError(t, repo.SetDebugTrends(true))
		assert.True(t, repo.DebugTrends())

		require.NoError(t, repo.SetDebugTrends(false))
		assert.False(t, repo.DebugTrends())
	})
}
