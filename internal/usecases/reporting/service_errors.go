package reporting

import "github.com/pkg/errors"

var (
	// ErrMissingCredential indica que a credencial não foi enviada
	ErrMissingCredential = errors.New("arquivo de credencial não informado")

	// ErrMissingPropertyID indica que o ID da propriedade está em branco
	ErrMissingPropertyID = errors.New("ID da propriedade do GA4 não informado")

	// ErrCredentialRejected indica que o cliente do GA4 não pôde ser inicializado
	ErrCredentialRejected = errors.New("credencial de service account rejeitada")

	// ErrReportBuild indica falha na montagem da planilha
	ErrReportBuild = errors.New("erro ao montar a planilha do relatório")
)
