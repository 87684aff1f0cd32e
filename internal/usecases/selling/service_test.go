package selling

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

// baselinerSpy registra as chamadas de recalculo de baseline diária
type baselinerSpy struct {
	calls []string
}

func (b *baselinerSpy) EnsureDailyBaseline(salespersonID string, _ time.Time) {
	b.calls = append(b.calls, salespersonID)
}

func newServiceWithEmptyLedger(t *testing.T) (*Service, *mocks.MockLedgerRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	repo.EXPECT().Load().Return([]*domain.Salesperson{}, nil)

	return NewService(repo), repo
}

func TestNewService_CorruptLedgerStartsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	repo.EXPECT().Load().Return(nil, errors.New("documento corrompido"))

	service := NewService(repo)

	assert.Empty(t, service.ListSalespeople())
}

func TestRegisterSalesperson(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		setup       func(service *Service, repo *mocks.MockLedgerRepository)
		expectedErr error
	}{
		{
			name:  "registra vendedor com nome válido",
			input: "Ana",
			setup: func(_ *Service, repo *mocks.MockLedgerRepository) {
				repo.EXPECT().Save(gomock.Any()).Return(nil)
			},
		},
		{
			name:  "remove espaços ao redor do nome",
			input: "  Beto  ",
			setup: func(_ *Service, repo *mocks.MockLedgerRepository) {
				repo.EXPECT().Save(gomock.Any()).Return(nil)
			},
		},
		{
			name:        "rejeita nome vazio",
			input:       "",
			expectedErr: ErrInvalidName,
		},
		{
			name:        "rejeita nome só com espaços",
			input:       "   ",
			expectedErr: ErrInvalidName,
		},
		{
			name:  "rejeita nome duplicado ignorando maiúsculas",
			input: "ANA",
			setup: func(service *Service, repo *mocks.MockLedgerRepository) {
				repo.EXPECT().Save(gomock.Any()).Return(nil)
				_, err := service.RegisterSalesperson("Ana", now)
				require.NoError(t, err)
			},
			expectedErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newServiceWithEmptyLedger(t)
			if tt.setup != nil {
				tt.setup(service, repo)
			}

			salesperson, err := service.RegisterSalesperson(tt.input, now)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, salesperson)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, salesperson)
			assert.NotEmpty(t, salesperson.ID)
			assert.Equal(t, now, salesperson.RegisteredAt)
			assert.NotContains(t, salesperson.Name, " ")
		})
	}
}

func TestRecordSale(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	t.Run("registra venda e persiste o ledger", func(t *testing.T) {
		service, repo := newServiceWithEmptyLedger(t)
		repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

		ana, err := service.RegisterSalesperson("Ana", now)
		require.NoError(t, err)

		sale, err := service.RecordSale(ana.ID, 1500.50, now)

		require.NoError(t, err)
		assert.Equal(t, 1500.50, sale.Amount)
		assert.Equal(t, now, sale.OccurredAt)

		salespeople := service.ListSalespeople()
		require.Len(t, salespeople, 1)
		require.Len(t, salespeople[0].Sales, 1)
	})

	t.Run("rejeita valores inválidos", func(t *testing.T) {
		service, repo := newServiceWithEmptyLedger(t)
		repo.EXPECT().Save(gomock.Any()).Return(nil)

		ana, err := service.RegisterSalesperson("Ana", now)
		require.NoError(t, err)

		for _, amount := range []float64{0, -10, -0.01} {
			_, err := service.RecordSale(ana.ID, amount, now)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})

	t.Run("rejeita vendedor desconhecido", func(t *testing.T) {
		service, _ := newServiceWithEmptyLedger(t)

		_, err := service.RecordSale("inexistente", 100, now)

		assert.ErrorIs(t, err, ErrUnknownSalesperson)
	})

	t.Run("falha de persistência mantém a venda em memória", func(t *testing.T) {
		service, repo := newServiceWithEmptyLedger(t)
		repo.EXPECT().Save(gomock.Any()).Return(nil)

		ana, err := service.RegisterSalesperson("Ana", now)
		require.NoError(t, err)

		repo.EXPECT().Save(gomock.Any()).Return(errors.New("disco cheio"))

		sale, err := service.RecordSale(ana.ID, 300, now)

		require.NoError(t, err)
		require.NotNil(t, sale)

		salespeople := service.ListSalespeople()
		require.Len(t, salespeople, 1)
		assert.Len(t, salespeople[0].Sales, 1)
	})
}

func TestRecordSale_DailyBaselineTrigger(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	service, repo := newServiceWithEmptyLedger(t)
	repo.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	spy := &baselinerSpy{}
	service.WithBaseliner(spy)

	ana, err := service.RegisterSalesperson("Ana", now)
	require.NoError(t, err)

	// Primeira venda do dia dispara o recalculo de baseline
	_, err = service.RecordSale(ana.ID, 100, now)
	require.NoError(t, err)
	assert.Equal(t, []string{ana.ID}, spy.calls)

	// Segunda venda no mesmo dia não dispara de novo
	_, err = service.RecordSale(ana.ID, 200, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, spy.calls, 1)

	// Primeira venda do dia seguinte dispara novamente
	_, err = service.RecordSale(ana.ID, 300, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, spy.calls, 2)
}

func TestImportSale_DoesNotPersistPerRow(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)
	past := time.Date(2023, 11, 3, 14, 30, 0, 0, time.UTC)

	service, repo := newServiceWithEmptyLedger(t)
	repo.EXPECT().Save(gomock.Any()).Return(nil)

	ana, err := service.RegisterSalesperson("Ana", now)
	require.NoError(t, err)

	// Nenhum Save extra esperado: a importação persiste só no fim do lote
	sale, err := service.ImportSale(ana.ID, 750, past)

	require.NoError(t, err)
	assert.Equal(t, past, sale.OccurredAt)

	repo.EXPECT().Save(gomock.Any()).Return(nil)
	service.Persist()
}

func TestListSalespeople_ReturnsDeepCopies(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	service, repo := newServiceWithEmptyLedger(t)
	repo.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	ana, err := service.RegisterSalesperson("Ana", now)
	require.NoError(t, err)

	_, err = service.RecordSale(ana.ID, 100, now)
	require.NoError(t, err)

	copies := service.ListSalespeople()
	copies[0].Name = "Alterada"
	copies[0].Sales[0].Amount = 999999

	fresh := service.ListSalespeople()
	assert.Equal(t, "Ana", fresh[0].Name)
	assert.Equal(t, 100.0, fresh[0].Sales[0].Amount)
}

func TestFindByName(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	service, repo := newServiceWithEmptyLedger(t)
	repo.EXPECT().Save(gomock.Any()).Return(nil)

	_, err := service.RegisterSalesperson("Ana Clara", now)
	require.NoError(t, err)

	assert.NotNil(t, service.FindByName("ana clara"))
	assert.NotNil(t, service.FindByName("  Ana Clara "))
	assert.Nil(t, service.FindByName("Beto"))
}

func TestReplaceAll(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	t.Run("substitui o ledger inteiro", func(t *testing.T) {
		service, repo := newServiceWithEmptyLedger(t)
		repo.EXPECT().Save(gomock.Any()).Return(nil)

		err := service.ReplaceAll([]*domain.Salesperson{
			{ID: "ana", Name: "Ana", RegisteredAt: now, Sales: []domain.Sale{}},
		})

		require.NoError(t, err)
		assert.Len(t, service.ListSalespeople(), 1)
	})

	t.Run("rejeita ledger nulo", func(t *testing.T) {
		service, _ := newServiceWithEmptyLedger(t)

		assert.ErrorIs(t, service.ReplaceAll(nil), ErrMalformedLedger)
	})

	t.Run("rejeita vendedor sem nome", func(t *testing.T) {
		service, _ := newServiceWithEmptyLedger(t)

		err := service.ReplaceAll([]*domain.Salesperson{
			{ID: "x", Name: "  ", RegisteredAt: now},
		})

		assert.ErrorIs(t, err, ErrMalformedLedger)
	})

	t.Run("normaliza lista de vendas nula", func(t *testing.T) {
		service, repo := newServiceWithEmptyLedger(t)
		repo.EXPECT().Save(gomock.Any()).Return(nil)

		err := service.ReplaceAll([]*domain.Salesperson{
			{ID: "ana", Name: "Ana", RegisteredAt: now, Sales: nil},
		})

		require.NoError(t, err)
		assert.NotNil(t, service.ListSalespeople()[0].Sales)
	})
}

func TestReset(t *testing.T) {
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	service, repo := newServiceWithEmptyLedger(t)
	repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	_, err := service.RegisterSalesperson("Ana", now)
	require.NoError(t, err)

	service.Reset()

	assert.Empty(t, service.ListSalespeople())
}
