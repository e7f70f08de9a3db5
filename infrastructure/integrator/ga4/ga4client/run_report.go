package ga4client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	ga4domain "github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/domain"
)

// RunReport executa uma consulta runReport para uma propriedade do GA4
func (c *GA4Client) RunReport(
	ctx context.Context,
	propertyID string,
	request *ga4domain.RunReportRequest,
) (*ga4domain.RunReportResponse, error) {
	url := fmt.Sprintf("%s/properties/%s:runReport", c.baseURL, propertyID)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao codificar a requisição runReport")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API de dados do GA4")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do GA4")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ga4domain.APIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"property_id": propertyID,
				"status":      apiErr.Error.Status,
				"code":        apiErr.Error.Code,
			}).Error("GA4 retornou erro para a consulta runReport")

			return nil, errors.Errorf("GA4 %s: %s", apiErr.Error.Status, apiErr.Error.Message)
		}

		return nil, errors.Errorf("GA4 respondeu status %d", resp.StatusCode)
	}

	var response ga4domain.RunReportResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do GA4")
	}

	return &response, nil
}
