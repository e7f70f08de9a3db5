package handler

import (
	"net/http"

	"github.com/vfg2006/ga4-report-api/internal/api/handler/router"
	"github.com/vfg2006/ga4-report-api/internal/usecases/reporting"
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

func Reports(service reporting.ReportGenerator) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: ReportForm(service),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: GenerateReport(service),
		},
		{
			Path:    "/v1/reports/months",
			Method:  http.MethodGet,
			Handler: ListReportMonths(service),
		},
	}
}
