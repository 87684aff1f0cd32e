// Package selling implementa o ledger de vendas: registro de vendedores e
// de vendas individuais. O estado em memória é a fonte de verdade da sessão;
// a persistência é write-through e falhas de gravação não desfazem a mutação
// (disponibilidade acima de durabilidade).
package selling

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/pkg/utils"
)

// Baseliner recalcula a baseline diária do snapshot quando um vendedor faz
// a primeira venda do dia e ainda não há baseline registrada para hoje.
type Baseliner interface {
	EnsureDailyBaseline(salespersonID string, now time.Time)
}

type Service struct {
	mu          sync.RWMutex
	salespeople []*domain.Salesperson
	repo        repository.LedgerRepository
	baseliner   Baseliner
}

// NewService carrega o ledger persistido e constrói o serviço. Dados
// corrompidos no armazenamento resultam em ledger vazio, nunca em falha de
// inicialização.
func NewService(repo repository.LedgerRepository) *Service {
	salespeople, err := repo.Load()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar ledger persistido, iniciando vazio")
		salespeople = []*domain.Salesperson{}
	}

	logrus.WithField("salespeople", len(salespeople)).Info("Ledger de vendas carregado")

	return &Service{
		salespeople: salespeople,
		repo:        repo,
	}
}

// WithBaseliner conecta o serviço de snapshot responsável pela baseline
// diária. Ligado após a construção para evitar dependência circular no boot.
func (s *Service) WithBaseliner(baseliner Baseliner) *Service {
	s.baseliner = baseliner
	return s
}

// RegisterSalesperson registra um novo vendedor. O nome precisa ser não
// vazio após trim e único sem diferenciar maiúsculas de minúsculas.
func (s *Service) RegisterSalesperson(name string, now time.Time) (*domain.Salesperson, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.salespeople {
		if strings.EqualFold(existing.Name, trimmed) {
			return nil, ErrDuplicateName
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	salesperson := &domain.Salesperson{
		ID:           id,
		Name:         trimmed,
		RegisteredAt: now,
		Sales:        []domain.Sale{},
	}

	s.salespeople = append(s.salespeople, salesperson)

	logrus.WithFields(logrus.Fields{
		"salesperson_id":   salesperson.ID,
		"salesperson_name": salesperson.Name,
	}).Info("Vendedor registrado")

	s.persistLocked()

	return cloneSalesperson(salesperson), nil
}

// RecordSale registra uma venda para o vendedor com OccurredAt = now.
// Se for a primeira venda do dia e ainda não houver baseline para hoje,
// a baseline diária do snapshot é recalculada antes do append.
func (s *Service) RecordSale(salespersonID string, amount float64, now time.Time) (*domain.Sale, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	// A checagem de primeira venda do dia acontece fora do lock de escrita:
	// o baseliner relê o roster por ListSalespeople.
	s.mu.RLock()
	salesperson := s.findLocked(salespersonID)
	firstSaleOfDay := false
	if salesperson != nil {
		_, todayCount := salesperson.SalesSince(utils.StartOfDay(now), now)
		firstSaleOfDay = todayCount == 0
	}
	s.mu.RUnlock()

	if salesperson == nil {
		return nil, ErrUnknownSalesperson
	}

	if firstSaleOfDay && s.baseliner != nil {
		s.baseliner.EnsureDailyBaseline(salespersonID, now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salesperson = s.findLocked(salespersonID)
	if salesperson == nil {
		return nil, ErrUnknownSalesperson
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	sale := domain.Sale{
		ID:         id,
		Amount:     amount,
		OccurredAt: now,
	}

	salesperson.Sales = append(salesperson.Sales, sale)

	logrus.WithFields(logrus.Fields{
		"salesperson_id": salespersonID,
		"sale_id":        sale.ID,
		"amount":         amount,
	}).Info("Venda registrada")

	s.persistLocked()

	return &sale, nil
}

// ImportSale acrescenta uma venda com data histórica, usado pela importação
// de CSV. Não dispara baseline nem persiste a cada linha; o chamador deve
// invocar Persist ao final do lote.
func (s *Service) ImportSale(salespersonID string, amount float64, occurredAt time.Time) (*domain.Sale, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salesperson := s.findLocked(salespersonID)
	if salesperson == nil {
		return nil, ErrUnknownSalesperson
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	sale := domain.Sale{
		ID:         id,
		Amount:     amount,
		OccurredAt: occurredAt,
	}

	salesperson.Sales = append(salesperson.Sales, sale)

	return &sale, nil
}

// ListSalespeople retorna uma cópia do ledger em ordem de registro. As
// cópias são profundas para que o ranking possa iterar sem segurar o lock.
func (s *Service) ListSalespeople() []*domain.Salesperson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Salesperson, 0, len(s.salespeople))
	for _, sp := range s.salespeople {
		out = append(out, cloneSalesperson(sp))
	}

	return out
}

// FindSalesperson busca um vendedor pelo ID; retorna nil se não existir.
func (s *Service) FindSalesperson(salespersonID string) *domain.Salesperson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp := s.findLocked(salespersonID)
	if sp == nil {
		return nil
	}

	return cloneSalesperson(sp)
}

// FindByName busca um vendedor pelo nome sem diferenciar maiúsculas.
func (s *Service) FindByName(name string) *domain.Salesperson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sp := range s.salespeople {
		if strings.EqualFold(sp.Name, strings.TrimSpace(name)) {
			return cloneSalesperson(sp)
		}
	}

	return nil
}

// ReplaceAll substitui o ledger inteiro, usado pela importação de JSON.
func (s *Service) ReplaceAll(salespeople []*domain.Salesperson) error {
	if salespeople == nil {
		return ErrMalformedLedger
	}

	for _, sp := range salespeople {
		if sp == nil || strings.TrimSpace(sp.Name) == "" {
			return ErrMalformedLedger
		}
		if sp.Sales == nil {
			sp.Sales = []domain.Sale{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.salespeople = salespeople

	logrus.WithField("salespeople", len(salespeople)).Info("Ledger substituído por importação")

	s.persistLocked()

	return nil
}

// Reset apaga todos os vendedores e vendas (limpeza total do painel).
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.salespeople = []*domain.Salesperson{}

	logrus.Warn("Ledger de vendas zerado")

	s.persistLocked()
}

// Persist grava o ledger atual, usado após importações em lote.
func (s *Service) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked()
}

// persistLocked grava o ledger inteiro. Falha de persistência é logada e
// não desfaz a mutação em memória: o ledger da sessão segue valendo.
func (s *Service) persistLocked() {
	if err := s.repo.Save(s.salespeople); err != nil {
		logrus.WithError(err).Error("Erro ao persistir ledger de vendas")
	}
}

func (s *Service) findLocked(salespersonID string) *domain.Salesperson {
	for _, sp := range s.salespeople {
		if sp.ID == salespersonID {
			return sp
		}
	}
	return nil
}

func cloneSalesperson(sp *domain.Salesperson) *domain.Salesperson {
	clone := *sp
	clone.Sales = make([]domain.Sale, len(sp.Sales))
	copy(clone.Sales, sp.Sales)
	return &clone
}
