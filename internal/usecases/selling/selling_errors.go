package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do ledger de vendas
var (
	// Erros de validação
	ErrInvalidName        = errors.New("invalid salesperson name")
	ErrDuplicateName      = errors.New("salesperson already registered")
	ErrUnknownSalesperson = errors.New("salesperson not found")
	ErrInvalidAmount      = errors.New("sale amount must be positive")

	// Erros de importação
	ErrMalformedLedger = errors.New("malformed ledger data")

	// Erros de identificação
	ErrGenerateID = errors.New("error generating ID")
)

// SellingError é um erro com contexto adicional do ledger
type SellingError struct {
	Err           error  // Erro base
	Code          string // Código de erro para API
	SalespersonID string // ID do vendedor envolvido (quando aplicável)
	Details       string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SellingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SellingError) Unwrap() error {
	return e.Err
}

// NewSellingError cria um novo SellingError
func NewSellingError(err error, code string, details string) *SellingError {
	return &SellingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
