// Package telemetry é o cliente da API real de telemetria da usina.
// A API nunca foi implantada: o cliente existe para o caminho
// use_mocks=false e devolve ErrNotImplemented em todas as chamadas.
package telemetry

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heliogrid/heliogrid-web/internal/domain"
)

// ErrNotImplemented sinaliza que o backend real nunca saiu do papel.
var ErrNotImplemented = errors.New("API de telemetria não implementada; habilite USE_MOCKS")

// Client define as consultas que a API real atenderia.
type Client interface {
	EnergySummary(ctx context.Context) (*domain.EnergySummary, error)
	SalesSummary(ctx context.Context) (*domain.SalesSummary, error)
	BatterySummary(ctx context.Context) (*domain.BatterySummary, error)
	PriceHistory(ctx context.Context, filters *domain.HistoryFilters) (*domain.PriceHistory, error)
	UpcomingActions(ctx context.Context) ([]*domain.UpcomingAction, error)
	Explanations(ctx context.Context) ([]*domain.Explanation, error)
}

type client struct {
	baseURL string
}

// NewClient cria o cliente apontando para a URL configurada.
func NewClient(baseURL string) Client {
	return &client{baseURL: baseURL}
}

func (c *client) notImplemented(operation string) error {
	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"base_url":  c.baseURL,
	}).Error("Chamada à API de telemetria real, que nunca foi implementada")

	return ErrNotImplemented
}

func (c *client) EnergySummary(ctx context.Context) (*domain.EnergySummary, error) {
	return nil, c.notImplemented("EnergySummary")
}

func (c *client) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	return nil, c.notImplemented("SalesSummary")
}

func (c *client) BatterySummary(ctx context.Context) (*domain.BatterySummary, error) {
	return nil, c.notImplemented("BatterySummary")
}

func (c *client) PriceHistory(ctx context.Context, filters *domain.HistoryFilters) (*domain.PriceHistory, error) {
	return nil, c.notImplemented("PriceHistory")
}

func (c *client) UpcomingActions(ctx context.Context) ([]*domain.UpcomingAction, error) {
	return nil, c.notImplemented("UpcomingActions")
}

func (c *client) Explanations(ctx context.Context) ([]*domain.Explanation, error) {
	return nil, c.notImplemented("Explanations")
}
