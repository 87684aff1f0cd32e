// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/storage"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
)

const ledgerKey = "salespeople"

// LedgerRepository persiste o ledger completo de vendedores e vendas.
type LedgerRepository interface {
	Load() ([]*domain.Salesperson, error)
	Save(salespeople []*domain.Salesperson) error
}

type ledgerRepository struct {
	store *storage.LocalStore
}

func NewLedgerRepository(store *storage.LocalStore) LedgerRepository {
	return &ledgerRepository{
		store: store,
	}
}

// Load carrega o ledger persistido. Documento ausente ou corrompido resulta
// em ledger vazio: a inicialização nunca falha por dados ruins no disco.
func (r *ledgerRepository) Load() ([]*domain.Salesperson, error) {
	var salespeople []*domain.Salesperson

	found, err := r.store.Get(ledgerKey, &salespeople)
	if err != nil {
		logrus.WithError(err).Warn("Ledger persistido ilegível, iniciando com ledger vazio")
		return []*domain.Salesperson{}, nil
	}

	if !found || salespeople == nil {
		return []*domain.Salesperson{}, nil
	}

	return salespeople, nil
}

// Save grava o ledger inteiro de uma vez (documento completo + swap atômico).
func (r *ledgerRepository) Save(salespeople []*domain.Salesperson) error {
	return r.store.Put(ledgerKey, salespeople)
}
