package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/selling"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

type createSalespersonRequest struct {
	Name string `json:"name"`
}

// CreateSalesperson registra um novo vendedor no ledger
func CreateSalesperson(service *selling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSalespersonRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		salesperson, err := service.RegisterSalesperson(req.Name, time.Now())
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, selling.ErrInvalidName) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidName, "Nome do vendedor é obrigatório", nil)
				return
			}
			if errors.Is(err, selling.ErrDuplicateName) {
				apiErrors.WriteError(w, apiErrors.ErrDuplicateName, "Vendedor já registrado com esse nome", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar vendedor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(salesperson); err != nil {
			logrus.Error("Erro ao enviar resposta do registro de vendedor:", err)
		}
	}
}

// ListSalespeople retorna o ledger completo em ordem de registro
func ListSalespeople(service *selling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		salespeople := service.ListSalespeople()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(salespeople); err != nil {
			logrus.Error("Erro ao enviar lista de vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ResetLedger apaga todos os vendedores e vendas (limpeza total do painel)
func ResetLedger(service *selling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.Reset()

		w.WriteHeader(http.StatusNoContent)
	}
}
