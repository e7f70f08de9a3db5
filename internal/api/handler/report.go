package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/ga4-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ga4-report-api/pkg/apiErrors"
	"github.com/vfg2006/ga4-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite do upload da credencial; chaves de service account têm poucos KB
const maxUploadSize = 1 << 20

// GenerateReport executa uma sessão de relatório a partir do formulário:
// credencial por upload, ID da propriedade e download da planilha na resposta
func GenerateReport(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logger.WithError(err).Warn("reports: invalid multipart form")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
			return
		}

		file, _, err := r.FormFile("key_file")
		if err != nil {
			logger.Warn("reports: missing credential file")
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentialFile,
				"Envie o arquivo de credencial do service account", nil)
			return
		}
		defer file.Close()

		keyJSON, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Warn("reports: failed to read credential file")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Não foi possível ler o arquivo de credencial", nil)
			return
		}

		propertyID := strings.TrimSpace(r.FormValue("property_id"))
		if propertyID == "" {
			logger.Warn("reports: missing property ID")
			apiErrors.WriteError(w, apiErrors.ErrMissingPropertyID,
				"Informe o ID da propriedade do GA4", nil)
			return
		}

		logger.WithField("property_id", propertyID).Info("reports: starting report session")

		result, err := service.GenerateReport(r.Context(), reporting.ReportInput{
			KeyJSON:    keyJSON,
			PropertyID: propertyID,
		})
		if err != nil {
			writeReportError(w, logger, propertyID, err)
			return
		}

		if len(result.Warnings) > 0 {
			warnings := make([]string, 0, len(result.Warnings))
			for _, warning := range result.Warnings {
				warnings = append(warnings, fmt.Sprintf("%s %d", warning.Month, warning.Year))
			}

			logger.WithField("failed_months", warnings).Warn("reports: report generated with missing months")
			w.Header().Set("X-Report-Warnings", strings.Join(warnings, ", "))
		}

		logger.WithFields(log.Fields{
			"property_id": propertyID,
			"bytes":       len(result.Content),
		}).Info("reports: report generated successfully")

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))

		if _, err := w.Write(result.Content); err != nil {
			logger.WithError(err).Error("reports: failed to write report response")
		}
	})
}

func writeReportError(w http.ResponseWriter, logger log.Logger, propertyID string, err error) {
	logger.WithError(err).WithField("property_id", propertyID).Error("reports: report session failed")

	switch {
	case errors.Is(err, reporting.ErrMissingCredential):
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentialFile, err.Error(), nil)
	case errors.Is(err, reporting.ErrMissingPropertyID):
		apiErrors.WriteError(w, apiErrors.ErrMissingPropertyID, err.Error(), nil)
	case errors.Is(err, reporting.ErrCredentialRejected):
		apiErrors.WriteError(w, apiErrors.ErrCredentialRejected, err.Error(), nil)
	case errors.Is(err, reporting.ErrReportBuild):
		apiErrors.WriteError(w, apiErrors.ErrReportBuild, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o relatório", nil)
	}
}

type monthWindowResponse struct {
	Label     string `json:"label"`
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ListReportMonths retorna as janelas mensais configuradas para o relatório
func ListReportMonths(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		windows := service.Windows()
		months := make([]monthWindowResponse, 0, len(windows))
		for _, window := range windows {
			months = append(months, monthWindowResponse{
				Label:     window.Label,
				Year:      window.Year,
				StartDate: window.StartDate.Format(time.DateOnly),
				EndDate:   window.EndDate.Format(time.DateOnly),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(months); err != nil {
			logger.WithError(err).Error("reports: failed to encode months response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
