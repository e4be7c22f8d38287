package handler

import (
	"net/http"

	"github.com/vfg2006/creative-fatigue-api/internal/api/handler/router"
	"github.com/vfg2006/creative-fatigue-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-fatigue-api/pkg/middleware"
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

func FatigueAnalysis(service analyzing.Analyzer, defaultRangeDays int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/fatigue-analysis",
			Method:      http.MethodGet,
			Handler:     GetFatigueAnalysis(service, defaultRangeDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/creative-scores",
			Method:      http.MethodGet,
			Handler:     GetCreativeScores(service, defaultRangeDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
