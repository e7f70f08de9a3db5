package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de validação (VAL)
	ErrMissingCredentialFile = "VAL_001" // Arquivo de credencial ausente
	ErrMissingPropertyID     = "VAL_002" // ID da propriedade ausente
	ErrInvalidRequest        = "VAL_003" // Requisição inválida

	// Erros de integração com o GA4 (GA4)
	ErrCredentialRejected = "GA4_001" // Credencial rejeitada pelo Google
	ErrExternalService    = "GA4_002" // Erro na API de dados do GA4

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrReportBuild    = "SRV_002" // Erro ao montar a planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingCredentialFile: http.StatusBadRequest,
	ErrMissingPropertyID:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrCredentialRejected:    http.StatusUnauthorized,
	ErrExternalService:       http.StatusBadGateway,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrReportBuild:           http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
