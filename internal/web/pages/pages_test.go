package pages_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/web/pages"
)

func TestLanding(t *testing.T) {
	var sb strings.Builder
	err := pages.Landing().Render(&sb)
	assert.NoError(t, err)

	html := sb.String()
	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "Own a slice of sunlight.")
	assert.Contains(t, html, `href="/dashboard"`)
	assert.Contains(t, html, "glass-card")
	assert.Contains(t, html, "nothing on this site is investment advice")
}

func TestDashboard(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	data := pages.DashboardData{
		Energy: &domain.EnergySummary{
			GeneratedTodayKWh: 182340,
			CapacityFactor:    0.312,
			CO2AvoidedTonnes:  2921.4,
			UpdatedAt:         now,
		},
		Sales: &domain.SalesSummary{
			RevenueTodayUSD: 15230.55,
			SoldTodayMWh:    164.2,
			PayoutMonthUSD:  240100,
			UpdatedAt:       now,
		},
		Battery: &domain.BatterySummary{
			SocPct:    71.5,
			PowerMW:   -18.4,
			Mode:      "discharging",
			UpdatedAt: now,
		},
		History: &domain.PriceHistory{
			Market: "CAISO-DEMO",
			Points: []domain.PricePoint{
				{At: now.Add(-time.Hour), USDPerMWh: 48.2, TxRef: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
				{At: now, USDPerMWh: 52.7, TxRef: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
			},
		},
		Actions: []domain.UpcomingAction{
			{
				ID:             "act-abc123",
				Persona:        domain.PersonaMarkets,
				Title:          "Descarga total no pico das 19h",
				ScheduledAt:    now.Add(7 * time.Hour),
				ExpectedImpact: "+$4.2K de receita estimada",
				ProofID:        "prf-xyz789",
			},
		},
		Explanations: []domain.Explanation{
			{
				ID:         "exp-T4kN8d",
				Persona:    domain.PersonaGovernance,
				Summary:    "Reserva de contingência elevada",
				Detail:     "O modelo de risco apontou aumento de volatilidade.",
				Confidence: 0.83,
				DecidedAt:  now,
				TxHash:     "0xc04b7a53e9d2861fb04c3975ade1f62803b94e1c",
			},
		},
	}

	var sb strings.Builder
	err := pages.Dashboard(data).Render(&sb)
	assert.NoError(t, err)

	html := sb.String()
	assert.Contains(t, html, "CAISO-DEMO")
	assert.Contains(t, html, "$52.70 /MWh")
	assert.Contains(t, html, "182.3 MWh")   // geração do dia em escala MWh
	assert.Contains(t, html, "$15,230.55")  // receita formatada
	assert.Contains(t, html, "71.5% SoC")
	assert.Contains(t, html, "discharging")
	assert.Contains(t, html, "Descarga total no pico das 19h")
	assert.Contains(t, html, "83.00%")
	assert.Contains(t, html, "0xc04b")                 // prefixo do hash truncado
	assert.Contains(t, html, `id="live-price"`)
	assert.Contains(t, html, "/v1/stream")
	assert.Contains(t, html, "<polyline")

	// A legenda mostra as quatro personas mesmo com explicações de uma só.
	for _, persona := range domain.AllPersonas() {
		assert.Contains(t, html, persona.Label())
	}
}

func TestDashboardEmptyHistory(t *testing.T) {
	data := pages.DashboardData{
		Energy:  &domain.EnergySummary{},
		Sales:   &domain.SalesSummary{},
		Battery: &domain.BatterySummary{},
		History: &domain.PriceHistory{Market: "CAISO-DEMO"},
	}

	var sb strings.Builder
	err := pages.Dashboard(data).Render(&sb)
	assert.NoError(t, err)
	assert.Contains(t, sb.String(), ">—</div>") // preço ao vivo cai no placeholder
}
