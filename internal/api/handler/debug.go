package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

type debugTrendsRequest struct {
	Enabled bool `json:"enabled"`
}

// UpdateTrendDebug liga/desliga a flag persistida de log detalhado do
// cálculo de tendência
func UpdateTrendDebug(repo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req debugTrendsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := repo.SetDebugTrends(req.Enabled); err != nil {
			logrus.Error("Erro ao persistir flag de debug:", err)
			apiErrors.WriteError(w, apiErrors.ErrPersistenceFailure, "Erro ao gravar flag de debug", nil)
			return
		}

		logrus.WithField("enabled", req.Enabled).Info("Flag de debug de tendências atualizada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"enabled": req.Enabled})
	}
}
