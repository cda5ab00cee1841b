package mocking

import "errors"

var (
	// ErrInvalidPeriod indica um filtro de datas com início depois do fim.
	ErrInvalidPeriod = errors.New("a data de início não pode ser posterior à data de fim")

	// ErrUnknownPersona indica uma persona fora do conjunto conhecido.
	ErrUnknownPersona = errors.New("persona desconhecida")
)
