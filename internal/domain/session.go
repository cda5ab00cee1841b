package domain

import "github.com/golang-jwt/jwt/v5"

// DemoClaims são as claims do token de sessão de demonstração.
// Não há usuários: o token apenas delimita a vida útil de uma sessão anônima.
type DemoClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// DemoSession é a resposta da emissão de uma sessão de demonstração.
type DemoSession struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
