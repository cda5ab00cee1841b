// Package mocking implementa a camada de dados do dashboard: funções de
// busca no formato REST que devolvem fixtures em memória depois de uma
// latência artificial fixa. Não existe backend real por trás.
package mocking

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/heliogrid/heliogrid-web/infrastructure/fixtures"
	"github.com/heliogrid/heliogrid-web/infrastructure/integrator/telemetry"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/pkg/log"
)

// Service serve as fixtures com a latência configurada. Quando use_mocks
// está desligado, delega ao cliente de telemetria real — que nunca foi
// implementado e devolve erro em todas as chamadas.
type Service struct {
	cfg       *config.Config
	store     fixtures.Store
	telemetry telemetry.Client
}

// NewService cria a camada de dados do dashboard.
func NewService(cfg *config.Config, store fixtures.Store, telemetryClient telemetry.Client) Fetcher {
	return &Service{
		cfg:       cfg,
		store:     store,
		telemetry: telemetryClient,
	}
}

// delay aplica a latência artificial respeitando o cancelamento do contexto.
func (s *Service) delay(ctx context.Context) error {
	latency := s.cfg.Mocks.Latency()
	if latency <= 0 {
		return nil
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) GetEnergySummary(ctx context.Context) (*domain.EnergySummary, error) {
	if !s.cfg.Mocks.Enabled {
		return s.telemetry.EnergySummary(ctx)
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	summary := s.store.Energy()
	return &summary, nil
}

func (s *Service) GetSalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	if !s.cfg.Mocks.Enabled {
		return s.telemetry.SalesSummary(ctx)
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	summary := s.store.Sales()
	return &summary, nil
}

func (s *Service) GetBatterySummary(ctx context.Context) (*domain.BatterySummary, error) {
	if !s.cfg.Mocks.Enabled {
		return s.telemetry.BatterySummary(ctx)
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	summary := s.store.Battery()
	return &summary, nil
}

func (s *Service) GetPriceHistory(ctx context.Context, filters *domain.HistoryFilters) (*domain.PriceHistory, error) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil &&
		!filters.StartDate.IsZero() && !filters.EndDate.IsZero() &&
		filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidPeriod
	}

	if !s.cfg.Mocks.Enabled {
		return s.telemetry.PriceHistory(ctx, filters)
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	history := s.store.PriceHistory()
	history.Points = history.FilterPoints(filters)

	log.ForContext(ctx).WithFields(log.Fields{
		"market": history.Market,
		"points": len(history.Points),
	}).Debug("Série de preços servida a partir das fixtures")

	return &history, nil
}

func (s *Service) GetUpcomingActions(ctx context.Context) ([]domain.UpcomingAction, error) {
	if !s.cfg.Mocks.Enabled {
		if _, err := s.telemetry.UpcomingActions(ctx); err != nil {
			return nil, err
		}
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	return s.store.Actions(), nil
}

func (s *Service) GetExplanations(ctx context.Context, persona domain.Persona) ([]domain.Explanation, error) {
	if persona != "" && !persona.Valid() {
		return nil, errors.Wrapf(ErrUnknownPersona, "persona %q", persona)
	}

	if !s.cfg.Mocks.Enabled {
		if _, err := s.telemetry.Explanations(ctx); err != nil {
			return nil, err
		}
	}

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	explanations := s.store.Explanations()
	if persona == "" {
		return explanations, nil
	}

	filtered := make([]domain.Explanation, 0, len(explanations))
	for _, explanation := range explanations {
		if explanation.Persona == persona {
			filtered = append(filtered, explanation)
		}
	}

	return filtered, nil
}
