package sessioning

import "github.com/pkg/errors"

var (
	// ErrInvalidSession indica token sem validade (assinatura, emissor ou expiração)
	ErrInvalidSession = errors.New("sessão de demonstração inválida")

	// ErrUnexpectedSigningMethod indica token assinado com algoritmo inesperado
	ErrUnexpectedSigningMethod = errors.New("método de assinatura inesperado")
)
