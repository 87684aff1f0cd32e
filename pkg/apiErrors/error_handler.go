package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do ledger de vendas (LED)
	ErrInvalidName        = "LED_001" // Nome vazio ou apenas espaços
	ErrDuplicateName      = "LED_002" // Vendedor já registrado com esse nome
	ErrUnknownSalesperson = "LED_003" // Vendedor não encontrado
	ErrInvalidAmount      = "LED_004" // Valor de venda não positivo ou não numérico

	// Erros de importação/exportação (IMP)
	ErrMalformedImportData = "IMP_001" // JSON/CSV sem o formato esperado

	// Erros do servidor (SRV)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrPersistenceFailure = "SRV_002" // Falha ao gravar no armazenamento local
	ErrStorageReadFailure = "SRV_003" // Dados persistidos corrompidos
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidName:         http.StatusBadRequest,
	ErrDuplicateName:       http.StatusConflict,
	ErrUnknownSalesperson:  http.StatusNotFound,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrMalformedImportData: http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrPersistenceFailure:  http.StatusInternalServerError,
	ErrStorageReadFailure:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
