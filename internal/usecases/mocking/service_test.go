package mocking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliogrid/heliogrid-web/infrastructure/fixtures/mocks"
	"github.com/heliogrid/heliogrid-web/infrastructure/integrator/telemetry"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/domain"
)

func newTestConfig(enabled bool, latencyMS int) *config.Config {
	return &config.Config{
		Mocks: config.Mocks{
			Enabled:           enabled,
			LatencyMS:         latencyMS,
			PriceHistoryLimit: 288,
		},
	}
}

func TestGetEnergySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().Energy().Return(domain.EnergySummary{GeneratedTodayKWh: 1234})

	service := NewService(newTestConfig(true, 0), mockStore, telemetry.NewClient(""))

	summary, err := service.GetEnergySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.0, summary.GeneratedTodayKWh)
}

func TestMocksDisabledReturnsNotImplemented(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem mocks habilitados o store nunca é consultado.
	mockStore := mocks.NewMockStore(ctrl)

	service := NewService(newTestConfig(false, 0), mockStore, telemetry.NewClient("https://api.heliogrid.energy"))

	_, err := service.GetEnergySummary(context.Background())
	assert.ErrorIs(t, err, telemetry.ErrNotImplemented)

	_, err = service.GetPriceHistory(context.Background(), nil)
	assert.ErrorIs(t, err, telemetry.ErrNotImplemented)

	_, err = service.GetUpcomingActions(context.Background())
	assert.ErrorIs(t, err, telemetry.ErrNotImplemented)
}

func TestDelayRespectsContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	service := NewService(newTestConfig(true, 5000), mockStore, telemetry.NewClient(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := service.GetBatterySummary(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancelamento não pode esperar a latência inteira")
}

func TestGetPriceHistory(t *testing.T) {
	base := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	history := domain.PriceHistory{
		Market: "CAISO-DEMO",
		Points: []domain.PricePoint{
			{At: base, USDPerMWh: 40},
			{At: base.Add(24 * time.Hour), USDPerMWh: 50},
			{At: base.Add(48 * time.Hour), USDPerMWh: 60},
		},
	}

	tests := []struct {
		name     string
		filters  *domain.HistoryFilters
		expected int
		wantErr  bool
	}{
		{name: "sem filtros devolve tudo", filters: nil, expected: 3},
		{
			name: "filtro de período recorta a série",
			filters: &domain.HistoryFilters{
				StartDate: timePtr(base.Add(12 * time.Hour)),
				EndDate:   timePtr(base.Add(36 * time.Hour)),
			},
			expected: 1,
		},
		{
			name: "início depois do fim é inválido",
			filters: &domain.HistoryFilters{
				StartDate: timePtr(base.Add(48 * time.Hour)),
				EndDate:   timePtr(base),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			if !tt.wantErr {
				mockStore.EXPECT().PriceHistory().Return(history)
			}

			service := NewService(newTestConfig(true, 0), mockStore, telemetry.NewClient(""))

			result, err := service.GetPriceHistory(context.Background(), tt.filters)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Points, tt.expected)
		})
	}
}

func TestGetExplanations(t *testing.T) {
	explanations := []domain.Explanation{
		{ID: "exp-1", Persona: domain.PersonaMarkets},
		{ID: "exp-2", Persona: domain.PersonaOperations},
		{ID: "exp-3", Persona: domain.PersonaMarkets},
	}

	t.Run("filtra por persona", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().Explanations().Return(explanations)

		service := NewService(newTestConfig(true, 0), mockStore, telemetry.NewClient(""))

		result, err := service.GetExplanations(context.Background(), domain.PersonaMarkets)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("persona vazia devolve tudo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().Explanations().Return(explanations)

		service := NewService(newTestConfig(true, 0), mockStore, telemetry.NewClient(""))

		result, err := service.GetExplanations(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("persona desconhecida é inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(newTestConfig(true, 0), mocks.NewMockStore(ctrl), telemetry.NewClient(""))

		_, err := service.GetExplanations(context.Background(), domain.Persona("finance"))
		assert.Error(t, err)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
