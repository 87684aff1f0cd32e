package handler

import (
	"net/http"

	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/sales-ranking-api/internal/scheduler"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/selling"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/snapshotting"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/transferring"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/trending"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Salespeople(service *selling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/salespeople",
			Method:  http.MethodPost,
			Handler: CreateSalesperson(service),
		},
		{
			Path:    "/v1/salespeople",
			Method:  http.MethodGet,
			Handler: ListSalespeople(service),
		},
		{
			Path:    "/v1/salespeople",
			Method:  http.MethodDelete,
			Handler: ResetLedger(service),
		},
	}
}

func Sales(service *selling.Service, ranker ranking.Ranker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: RecordSale(service, ranker),
		},
	}
}

func Ranking(ranker ranking.Ranker, trender *trending.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking/:period",
			Method:  http.MethodGet,
			Handler: GetRanking(ranker, trender),
		},
		{
			Path:    "/v1/stats/:period",
			Method:  http.MethodGet,
			Handler: GetStats(ranker),
		},
	}
}

func Snapshot(service *snapshotting.Service, rollover *scheduler.DayRolloverService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(service),
		},
		{
			Path:    "/v1/snapshot/reanchor",
			Method:  http.MethodPost,
			Handler: ReanchorSnapshot(service),
		},
		{
			Path:    "/v1/snapshot/verify",
			Method:  http.MethodPost,
			Handler: VerifyRollover(rollover),
		},
	}
}

func Transfer(service *transferring.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/json",
			Method:  http.MethodGet,
			Handler: ExportJSON(service),
		},
		{
			Path:    "/v1/export/csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
		{
			Path:    "/v1/import/json",
			Method:  http.MethodPost,
			Handler: ImportJSON(service),
		},
		{
			Path:    "/v1/import/csv",
			Method:  http.MethodPost,
			Handler: ImportCSV(service),
		},
	}
}

func Debug(repo repository.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/debug/trends",
			Method:  http.MethodPut,
			Handler: UpdateTrendDebug(repo),
		},
	}
}
