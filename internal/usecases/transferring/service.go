// Package transferring implementa a fronteira de importação e exportação de
// dados do painel: JSON com o ledger completo e CSV com uma linha por venda.
package transferring

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
)

// Ledger é a visão do ledger de vendas necessária para transferências.
type Ledger interface {
	ListSalespeople() []*domain.Salesperson
	FindByName(name string) *domain.Salesperson
	RegisterSalesperson(name string, now time.Time) (*domain.Salesperson, error)
	ImportSale(salespersonID string, amount float64, occurredAt time.Time) (*domain.Sale, error)
	ReplaceAll(salespeople []*domain.Salesperson) error
	Persist()
}

// JSONDocument é o formato de exportação/importação JSON do painel.
type JSONDocument struct {
	Salespeople []*domain.Salesperson `json:"salespeople"`
	ExportedAt  time.Time             `json:"exported_at"`
}

// ImportSummary resume o resultado de uma importação de CSV.
type ImportSummary struct {
	SalespeopleCreated int `json:"salespeople_created"`
	SalesImported      int `json:"sales_imported"`
	RowsSkipped        int `json:"rows_skipped"`
}

type Service struct {
	ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{
		ledger: ledger,
	}
}

// ExportJSON serializa o ledger completo no formato de intercâmbio.
func (s *Service) ExportJSON(now time.Time) ([]byte, error) {
	doc := JSONDocument{
		Salespeople: s.ledger.ListSalespeople(),
		ExportedAt:  now,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// ImportJSON substitui o ledger pelo conteúdo do documento. O documento
// precisa ter a chave salespeople com uma lista válida.
func (s *Service) ImportJSON(data []byte) error {
	var doc JSONDocument

	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrMalformedImportData
	}

	if doc.Salespeople == nil {
		return ErrMalformedImportData
	}

	if err := s.ledger.ReplaceAll(doc.Salespeople); err != nil {
		return ErrMalformedImportData
	}

	logrus.WithField("salespeople", len(doc.Salespeople)).Info("Ledger importado de JSON")

	return nil
}

// ExportFileName gera o nome do arquivo de exportação com a data do dia.
func ExportFileName(extension string, now time.Time) string {
	return fmt.Sprintf("sales_%s.%s", now.Format("2006-01-02"), extension)
}
