package mocking

import (
	"context"

	"github.com/heliogrid/heliogrid-web/internal/domain"
)

// Fetcher define as consultas de dados do dashboard no formato REST.
// A implementação padrão serve fixtures em memória com latência artificial.
type Fetcher interface {
	// GetEnergySummary obtém o resumo de geração da usina
	GetEnergySummary(ctx context.Context) (*domain.EnergySummary, error)

	// GetSalesSummary obtém o resumo de comercialização
	GetSalesSummary(ctx context.Context) (*domain.SalesSummary, error)

	// GetBatterySummary obtém o estado do banco de baterias
	GetBatterySummary(ctx context.Context) (*domain.BatterySummary, error)

	// GetPriceHistory obtém a série de preços, com filtro opcional de período
	GetPriceHistory(ctx context.Context, filters *domain.HistoryFilters) (*domain.PriceHistory, error)

	// GetUpcomingActions obtém a fila de ações planejadas
	GetUpcomingActions(ctx context.Context) ([]domain.UpcomingAction, error)

	// GetExplanations obtém as explicações de decisões, com filtro opcional de persona
	GetExplanations(ctx context.Context, persona domain.Persona) ([]domain.Explanation, error)
}
