package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliogrid/heliogrid-web/internal/api/handler"
	"github.com/heliogrid/heliogrid-web/internal/api/handler/router"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/usecases/mocking"
	"github.com/heliogrid/heliogrid-web/internal/usecases/sessioning"
)

// fakeFetcher devolve dados fixos sem latência, para testar só os handlers.
type fakeFetcher struct {
	energy       *domain.EnergySummary
	history      *domain.PriceHistory
	explanations []domain.Explanation
	err          error
}

func (f *fakeFetcher) GetEnergySummary(ctx context.Context) (*domain.EnergySummary, error) {
	return f.energy, f.err
}

func (f *fakeFetcher) GetSalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	return &domain.SalesSummary{}, f.err
}

func (f *fakeFetcher) GetBatterySummary(ctx context.Context) (*domain.BatterySummary, error) {
	return &domain.BatterySummary{}, f.err
}

func (f *fakeFetcher) GetPriceHistory(ctx context.Context, filters *domain.HistoryFilters) (*domain.PriceHistory, error) {
	if f.err != nil {
		return nil, f.err
	}
	history := *f.history
	history.Points = history.FilterPoints(filters)
	return &history, nil
}

func (f *fakeFetcher) GetUpcomingActions(ctx context.Context) ([]domain.UpcomingAction, error) {
	return nil, f.err
}

func (f *fakeFetcher) GetExplanations(ctx context.Context, persona domain.Persona) ([]domain.Explanation, error) {
	if persona != "" && !persona.Valid() {
		return nil, mocking.ErrUnknownPersona
	}
	return f.explanations, f.err
}

func newFakeFetcher() *fakeFetcher {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	return &fakeFetcher{
		energy: &domain.EnergySummary{GeneratedTodayKWh: 182340, UpdatedAt: now},
		history: &domain.PriceHistory{
			Market: "CAISO-DEMO",
			Points: []domain.PricePoint{
				{At: now.Add(-48 * time.Hour), USDPerMWh: 44.1},
				{At: now, USDPerMWh: 52.7},
			},
		},
		explanations: []domain.Explanation{
			{ID: "exp-1", Persona: domain.PersonaMarkets, Summary: "venda antecipada"},
		},
	}
}

func TestGetEnergySummary(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/energy", nil)

	handler.GetEnergySummary(newFakeFetcher()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary domain.EnergySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 182340.0, summary.GeneratedTodayKWh)
}

func TestGetPriceHistory(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedPoints int
	}{
		{
			name:           "sem filtros retorna a série completa",
			query:          "",
			expectedStatus: http.StatusOK,
			expectedPoints: 2,
		},
		{
			name:           "filtro de início corta pontos antigos",
			query:          "?start_date=2026-08-27",
			expectedStatus: http.StatusOK,
			expectedPoints: 1,
		},
		{
			name:           "data mal formatada retorna 400",
			query:          "?start_date=27/08/2026",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/price-history"+tt.query, nil)

			handler.GetPriceHistory(newFakeFetcher()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var history domain.PriceHistory
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
				assert.Len(t, history.Points, tt.expectedPoints)
			}
		})
	}
}

func TestGetExplanationsInvalidPersona(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/explanations?persona=astrology", nil)

	handler.GetExplanations(newFakeFetcher()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestStartDemoSession(t *testing.T) {
	cfg := &config.Config{
		DemoSession: config.DemoSession{Secret: "test_secret", TTLMinutes: 5},
	}
	service := sessioning.NewService(cfg)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/demo/session", nil)

	handler.StartDemoSession(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var session domain.DemoSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.NotEmpty(t, session.Token)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())
}

func TestSceneryAssets(t *testing.T) {
	cfg := &config.Config{}

	tests := []struct {
		name    string
		handler http.Handler
		target  string
		animate bool
	}{
		{
			name:    "malha hexagonal animada",
			handler: handler.SceneryHexGrid(cfg),
			target:  "/assets/scenery/hex.svg?seed=7",
			animate: true,
		},
		{
			name:    "malha hexagonal estática via query",
			handler: handler.SceneryHexGrid(cfg),
			target:  "/assets/scenery/hex.svg?seed=7&static=1",
			animate: false,
		},
		{
			name:    "campo de partículas",
			handler: handler.SceneryParticleField(cfg),
			target:  "/assets/scenery/field.svg?w=800&h=400",
			animate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
			if tt.animate {
				assert.Contains(t, rec.Body.String(), "<animate")
			} else {
				assert.NotContains(t, rec.Body.String(), "<animate")
			}
		})
	}
}

func TestStreamHubBroadcastTick(t *testing.T) {
	hub := handler.NewStreamHub()

	assert.Equal(t, 0, hub.Clients())

	err := hub.BroadcastTick(domain.PricePoint{USDPerMWh: 52.7, TxRef: "0xabc"})
	assert.NoError(t, err)
}

func TestGetCronStatusWithoutServices(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

	handler.GetCronStatus(handler.CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())
}

func TestRunCronJobInvalidType(t *testing.T) {
	rt := router.New(
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{})...),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/bogus/run", nil)

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestLandingPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler.LandingPage().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "HelioGrid")
}

func TestDashboardPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	handler.DashboardPage(newFakeFetcher()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAISO-DEMO")
}
