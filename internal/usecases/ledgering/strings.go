// Package ledgering gera as strings de exibição que imitam artefatos de
// blockchain no dashboard (hashes de transação e IDs de prova). Nada aqui
// é criptograficamente significativo; são apenas rótulos plausíveis.
package ledgering

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/heliogrid/heliogrid-web/pkg/utils"
)

// TxHash gera um pseudo-hash de transação no formato 0x + 16 bytes hex.
func TxHash() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(buf), nil
}

// ProofID gera um identificador curto de "prova" para as ações planejadas.
func ProofID() (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}
	return "prf-" + id, nil
}

// ActionID gera o identificador de uma ação planejada.
func ActionID() (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}
	return "act-" + id, nil
}
