package reporting

import (
	"context"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/mocks"
	"github.com/vfg2006/ga4-report-api/internal/domain"
)

type stubExporter struct {
	gotTable domain.ReportTable
	content  []byte
	err      error
}

func (e *stubExporter) Build(table domain.ReportTable) ([]byte, error) {
	e.gotTable = table
	return e.content, e.err
}

func TestGenerateReport_Validation(t *testing.T) {
	service := &Service{cfg: testConfig()}

	_, err := service.GenerateReport(context.Background(), ReportInput{
		PropertyID: "123456",
	})
	assert.ErrorIs(t, err, ErrMissingCredential)

	_, err = service.GenerateReport(context.Background(), ReportInput{
		KeyJSON:    []byte(`{"type":"service_account"}`),
		PropertyID: "   ",
	})
	assert.ErrorIs(t, err, ErrMissingPropertyID)
}

func TestGenerateReport_CredentialRejected(t *testing.T) {
	var credentialPath string

	service := &Service{
		cfg:     testConfig(),
		windows: testWindows(t, "2024-04"),
		clientFactory: func(_ context.Context, path string) (ga4client.Client, error) {
			credentialPath = path
			return nil, errors.New("invalid key")
		},
		exporter: &stubExporter{},
	}

	_, err := service.GenerateReport(context.Background(), ReportInput{
		KeyJSON:    []byte(`{"type":"service_account"}`),
		PropertyID: "123456",
	})

	assert.ErrorIs(t, err, ErrCredentialRejected)

	// A credencial temporária é removida também no caminho de erro
	require.NotEmpty(t, credentialPath)
	_, statErr := os.Stat(credentialPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateReport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keyJSON := []byte(`{"type":"service_account","project_id":"demo"}`)

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		RunReport(gomock.Any(), "123456", gomock.Any()).
		Return(ga4Response([3]string{"100", "80", "60"}), nil).
		Times(2)

	var credentialPath string
	exporter := &stubExporter{content: []byte("xlsx-bytes")}

	service := &Service{
		cfg:          testConfig(),
		windows:      testWindows(t, "2024-11", "2024-12"),
		channelGroup: "organic search",
		clientFactory: func(_ context.Context, path string) (ga4client.Client, error) {
			credentialPath = path

			// Durante a execução o arquivo temporário contém a chave enviada
			written, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, keyJSON, written)

			return mockClient, nil
		},
		exporter: exporter,
	}

	result, err := service.GenerateReport(context.Background(), ReportInput{
		KeyJSON:    keyJSON,
		PropertyID: "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "GA4_Report_Insights.xlsx", result.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.ContentType)
	assert.Equal(t, []byte("xlsx-bytes"), result.Content)
	assert.Empty(t, result.Warnings)

	require.Len(t, exporter.gotTable, 2)
	assert.Equal(t, "Nov", exporter.gotTable[0].MonthLabel)
	assert.Equal(t, "Dec", exporter.gotTable[1].MonthLabel)

	// A credencial temporária não sobrevive ao fim da execução
	_, statErr := os.Stat(credentialPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateReport_PartialFailureStillBuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		RunReport(gomock.Any(), "123456", gomock.Any()).
		Return(nil, errors.New("backend error")).
		Times(1)
	mockClient.EXPECT().
		RunReport(gomock.Any(), "123456", gomock.Any()).
		Return(ga4Response([3]string{"100", "80", "60"}), nil).
		Times(1)

	exporter := &stubExporter{content: []byte("xlsx-bytes")}
	service := &Service{
		cfg:          testConfig(),
		windows:      testWindows(t, "2024-11", "2024-12"),
		channelGroup: "organic search",
		clientFactory: func(_ context.Context, _ string) (ga4client.Client, error) {
			return mockClient, nil
		},
		exporter: exporter,
	}

	result, err := service.GenerateReport(context.Background(), ReportInput{
		KeyJSON:    []byte(`{"type":"service_account"}`),
		PropertyID: "123456",
	})
	require.NoError(t, err)

	// Melhor esforço: o relatório sai com os meses que sobraram e o aviso
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Nov", result.Warnings[0].Month)
	assert.Len(t, exporter.gotTable, 1)
}

func TestGenerateReport_ExporterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		RunReport(gomock.Any(), "123456", gomock.Any()).
		Return(ga4Response([3]string{"100", "80", "60"}), nil).
		Times(1)

	service := &Service{
		cfg:          testConfig(),
		windows:      testWindows(t, "2024-12"),
		channelGroup: "organic search",
		clientFactory: func(_ context.Context, _ string) (ga4client.Client, error) {
			return mockClient, nil
		},
		exporter: &stubExporter{err: errors.New("disk full")},
	}

	_, err := service.GenerateReport(context.Background(), ReportInput{
		KeyJSON:    []byte(`{"type":"service_account"}`),
		PropertyID: "123456",
	})

	assert.ErrorIs(t, err, ErrReportBuild)
}

func TestWriteScopedCredential(t *testing.T) {
	content := []byte(`{"type":"service_account"}`)

	path, cleanup, err := writeScopedCredential(content)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, written)

	// Dois uploads simultâneos não disputam o mesmo caminho
	otherPath, otherCleanup, err := writeScopedCredential(content)
	require.NoError(t, err)
	assert.NotEqual(t, path, otherPath)
	otherCleanup()

	cleanup()
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
