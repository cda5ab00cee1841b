// Package sessioning emite e valida os tokens da sessão de demonstração.
// Não há usuários nem senhas: o token apenas delimita a vida útil de uma
// sessão anônima do dashboard.
package sessioning

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/pkg/utils"
)

const issuer = "heliogrid-demo"

// Sessioner emite e valida sessões de demonstração.
type Sessioner interface {
	Issue() (*domain.DemoSession, error)
	Validate(tokenString string) (*domain.DemoClaims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Sessioner {
	return &Service{cfg: cfg}
}

// Issue cria uma nova sessão de demonstração com a TTL configurada.
func (s *Service) Issue() (*domain.DemoSession, error) {
	sessionID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.DemoSession.TTL())

	claims := &domain.DemoClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.DemoSession.Secret))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("Sessão de demonstração emitida")

	return &domain.DemoSession{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Validate confere assinatura, emissor e expiração do token.
func (s *Service) Validate(tokenString string) (*domain.DemoClaims, error) {
	claims := &domain.DemoClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(s.cfg.DemoSession.Secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
