package domain

import "time"

// EnergySummary resume a geração da usina para o dashboard.
// Todos os campos são valores de exibição vindos das fixtures.
type EnergySummary struct {
	GeneratedTodayKWh float64   `json:"generated_today_kwh" yaml:"generated_today_kwh"`
	GeneratedMonthKWh float64   `json:"generated_month_kwh" yaml:"generated_month_kwh"`
	CapacityMW        float64   `json:"capacity_mw" yaml:"capacity_mw"`
	CapacityFactor    float64   `json:"capacity_factor" yaml:"capacity_factor"`
	IrradianceWM2     float64   `json:"irradiance_w_m2" yaml:"irradiance_w_m2"`
	CO2AvoidedTonnes  float64   `json:"co2_avoided_tonnes" yaml:"co2_avoided_tonnes"`
	UpdatedAt         time.Time `json:"updated_at" yaml:"updated_at"`
}

// SalesSummary resume a comercialização de energia e o repasse aos investidores.
type SalesSummary struct {
	RevenueTodayUSD   float64   `json:"revenue_today_usd" yaml:"revenue_today_usd"`
	RevenueMonthUSD   float64   `json:"revenue_month_usd" yaml:"revenue_month_usd"`
	AvgPriceUSDPerMWh float64   `json:"avg_price_usd_per_mwh" yaml:"avg_price_usd_per_mwh"`
	SoldTodayMWh      float64   `json:"sold_today_mwh" yaml:"sold_today_mwh"`
	GridExportShare   float64   `json:"grid_export_share" yaml:"grid_export_share"`
	PayoutMonthUSD    float64   `json:"payout_month_usd" yaml:"payout_month_usd"`
	UpdatedAt         time.Time `json:"updated_at" yaml:"updated_at"`
}

// BatterySummary resume o estado do banco de baterias.
type BatterySummary struct {
	SocPct      float64   `json:"soc_pct" yaml:"soc_pct"`
	CapacityMWh float64   `json:"capacity_mwh" yaml:"capacity_mwh"`
	PowerMW     float64   `json:"power_mw" yaml:"power_mw"` // positivo carregando, negativo descarregando
	CycleCount  int       `json:"cycle_count" yaml:"cycle_count"`
	HealthPct   float64   `json:"health_pct" yaml:"health_pct"`
	Mode        string    `json:"mode" yaml:"mode"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}
