package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/transferring"
	"github.com/vfg2006/sales-ranking-api/pkg/apiErrors"
)

// Limite de tamanho dos arquivos importados (ledger local, nada gigante)
const maxImportSize = 10 << 20 // 10 MiB

// ExportJSON devolve o ledger completo no formato de intercâmbio
func ExportJSON(service *transferring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		data, err := service.ExportJSON(now)
		if err != nil {
			logrus.Error("Erro ao exportar JSON:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", transferring.ExportFileName("json", now)))
		w.Write(data)
	}
}

// ExportCSV devolve uma linha por venda; vendedor sem vendas gera uma linha
// com os campos de venda vazios
func ExportCSV(service *transferring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		data, err := service.ExportCSV()
		if err != nil {
			logrus.Error("Erro ao exportar CSV:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar dados", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", transferring.ExportFileName("csv", now)))
		w.Write(data)
	}
}

// ImportJSON substitui o ledger pelo documento enviado
func ImportJSON(service *transferring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportJSON")

		data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		if err := service.ImportJSON(data); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrMalformedImportData, "Arquivo JSON sem o formato esperado", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ImportCSV acrescenta vendedores e vendas a partir de um CSV tolerante a
// variações de cabeçalho
func ImportCSV(service *transferring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportCSV")

		data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		summary, err := service.ImportCSV(data, time.Now())
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, transferring.ErrMissingNameColumn) {
				apiErrors.WriteError(w, apiErrors.ErrMalformedImportData, "CSV sem coluna de nome reconhecível", nil)
				return
			}
			if errors.Is(err, transferring.ErrNoUsableRows) {
				apiErrors.WriteError(w, apiErrors.ErrMalformedImportData, "CSV sem nenhuma linha aproveitável", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrMalformedImportData, "Erro ao importar CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error("Erro ao enviar resumo da importação:", err)
		}
	}
}
