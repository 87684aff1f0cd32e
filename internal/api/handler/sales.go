package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/selling"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

type recordSaleRequest struct {
	SalespersonID string  `json:"salesperson_id"`
	Amount        float64 `json:"amount"`
	Period        string  `json:"period,omitempty"` // período exibido no painel; default daily
}

type recordSaleResponse struct {
	Sale          *domain.Sale `json:"sale"`
	PodiumChanged bool         `json:"podium_changed"`
}

// RecordSale registra uma venda e informa se o pódio do período exibido
// mudou (o painel usa a flag para a animação e o som de campeão).
func RecordSale(service *selling.Service, ranker ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordSaleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.SalespersonID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
			return
		}

		period := domain.PeriodDaily
		if req.Period != "" {
			parsed, err := domain.ParsePeriod(req.Period)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
				return
			}
			period = parsed
		}

		now := time.Now()
		before := ranker.RankFor(period, now)

		sale, err := service.RecordSale(req.SalespersonID, req.Amount, now)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, selling.ErrInvalidAmount) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, "Valor da venda deve ser positivo", nil)
				return
			}
			if errors.Is(err, selling.ErrUnknownSalesperson) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownSalesperson, "Vendedor não encontrado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar venda", nil)
			return
		}

		after := ranker.RankFor(period, time.Now())

		response := recordSaleResponse{
			Sale:          sale,
			PodiumChanged: ranking.PodiumChanged(before, after),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta do registro de venda:", err)
		}
	}
}
