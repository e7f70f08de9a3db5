package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ga4-report-api/pkg/utils"
)

// writeScopedCredential grava a credencial enviada em um arquivo temporário
// exclusivo da execução e devolve o caminho com a função de limpeza. O nome
// leva um ID por execução, então execuções simultâneas não disputam o arquivo,
// e a limpeza remove a credencial em todos os caminhos de saída.
func writeScopedCredential(keyJSON []byte) (string, func(), error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao gerar o ID da execução")
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("ga4-key-%s.json", runID))

	if err := os.WriteFile(path, keyJSON, 0o600); err != nil {
		return "", nil, errors.Wrap(err, "erro ao gravar a credencial temporária")
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).WithField("path", path).Warn("Erro ao remover a credencial temporária")
		}
	}

	return path, cleanup, nil
}
