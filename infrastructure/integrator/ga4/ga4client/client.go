package ga4client

import (
	"context"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	ga4domain "github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/ga4-report-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

// Escopo mínimo necessário para o endpoint runReport
const analyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"

type Client interface {
	RunReport(ctx context.Context, propertyID string, request *ga4domain.RunReportRequest) (*ga4domain.RunReportResponse, error)
}

// Factory cria um cliente autenticado a partir de um arquivo de credencial.
// O cliente é montado por execução porque a credencial chega por upload.
type Factory func(ctx context.Context, credentialPath string) (Client, error)

type GA4Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient lê a credencial de service account e monta o cliente HTTP com
// renovação automática de token via oauth2
func NewClient(ctx context.Context, cfg *config.Config, credentialPath string) (Client, error) {
	keyJSON, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo de credencial")
	}

	creds, err := google.CredentialsFromJSON(ctx, keyJSON, analyticsReadonlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "credencial de service account inválida")
	}

	return &GA4Client{
		baseURL:    cfg.GA4.BaseURL,
		httpClient: oauth2.NewClient(ctx, creds.TokenSource),
	}, nil
}

// NewFactory retorna a Factory usada pelo serviço de relatórios
func NewFactory(cfg *config.Config) Factory {
	return func(ctx context.Context, credentialPath string) (Client, error) {
		return NewClient(ctx, cfg, credentialPath)
	}
}
