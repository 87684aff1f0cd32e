package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/domain"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/trending"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

type rankedEntryResponse struct {
	domain.RankedEntry
	Trend *domain.TrendResult `json:"trend,omitempty"`
}

type rankingResponse struct {
	Period      domain.Period         `json:"period"`
	GeneratedAt time.Time             `json:"generated_at"`
	Entries     []rankedEntryResponse `json:"entries"`
	Stats       domain.PeriodStats    `json:"stats"`
}

// GetRanking retorna o ranking do período com tendência por vendedor e o
// bloco de estatísticas do painel
func GetRanking(ranker ranking.Ranker, trender *trending.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		now := time.Now()
		entries := ranker.RankFor(period, now)

		response := rankingResponse{
			Period:      period,
			GeneratedAt: now,
			Entries:     make([]rankedEntryResponse, 0, len(entries)),
			Stats:       ranker.StatsFor(period, now),
		}

		for _, entry := range entries {
			item := rankedEntryResponse{RankedEntry: entry}

			trend := trender.TrendFor(entry.SalespersonID, entry.Position, period, now)
			if trend.Kind != domain.TrendNone {
				item.Trend = &trend
			}

			response.Entries = append(response.Entries, item)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetStats retorna apenas as estatísticas agregadas do período
func GetStats(ranker ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		stats := ranker.StatsFor(period, time.Now())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar estatísticas do período:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

func periodFromRequest(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("period")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período não fornecido", nil)
		return "", false
	}

	period, err := domain.ParsePeriod(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
		return "", false
	}

	return period, true
}
