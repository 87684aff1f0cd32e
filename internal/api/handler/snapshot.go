package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/scheduler"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/snapshotting"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

// ReanchorSnapshot substitui os rankings do snapshot de hoje pela
// reconstrução das 00:01, sem mexer nas baselines diárias
func ReanchorSnapshot(service *snapshotting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReanchorSnapshot")

		snapshot, err := service.Reanchor(time.Now())
		if err != nil {
			logrus.Error("Erro ao reancorar snapshot:", err)
			apiErrors.WriteError(w, apiErrors.ErrPersistenceFailure, "Erro ao reancorar snapshot", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.Error("Erro ao enviar snapshot reancorado:", err)
		}
	}
}

// GetSnapshot retorna o snapshot de referência do dia atual
func GetSnapshot(service *snapshotting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.CurrentSnapshot(time.Now())
		if err != nil {
			logrus.Error("Erro ao buscar snapshot:", err)
			apiErrors.WriteError(w, apiErrors.ErrStorageReadFailure, "Erro ao ler snapshot do dia", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum snapshot capturado para hoje", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.Error("Erro ao enviar snapshot:", err)
		}
	}
}

// VerifyRollover dispara manualmente a verificação de virada de dia
func VerifyRollover(service *scheduler.DayRolloverService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - VerifyRollover")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de virada de dia não disponível", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "verificação de virada de dia iniciada",
		})
	}
}
