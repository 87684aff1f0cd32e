// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Salesperson representa um vendedor com seu histórico de vendas.
// A lista Sales é append-only: vendas nunca são editadas ou removidas
// individualmente (apenas o reset total limpa o ledger).
type Salesperson struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	Sales        []Sale    `json:"sales"`
}

// Sale representa uma venda individual registrada para um vendedor.
// Invariante: Amount > 0 sempre; o registro é imutável após criado.
type Sale struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LatestSale retorna a venda mais recente do vendedor (última registrada),
// ou nil se ainda não há vendas.
func (s *Salesperson) LatestSale() *Sale {
	if len(s.Sales) == 0 {
		return nil
	}
	return &s.Sales[len(s.Sales)-1]
}

// SalesSince soma o valor e conta as vendas com OccurredAt dentro do
// intervalo semiaberto [start, end).
func (s *Salesperson) SalesSince(start, end time.Time) (total float64, count int) {
	for _, sale := range s.Sales {
		if !sale.OccurredAt.Before(start) && sale.OccurredAt.Before(end) {
			total += sale.Amount
			count++
		}
	}
	return total, count
}
