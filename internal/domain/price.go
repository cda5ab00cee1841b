package domain

import "time"

// PricePoint é um ponto da série de preços exibida no gráfico do dashboard.
// TxRef é uma string de exibição gerada, não uma transação real.
type PricePoint struct {
	At        time.Time `json:"at" yaml:"at"`
	USDPerMWh float64   `json:"usd_per_mwh" yaml:"usd_per_mwh"`
	TxRef     string    `json:"tx_ref" yaml:"tx_ref"`
}

// PriceHistory é a série de preços de um mercado fictício.
type PriceHistory struct {
	Market string       `json:"market" yaml:"market"`
	Points []PricePoint `json:"points" yaml:"points"`
}

// HistoryFilters delimita o período solicitado para a série de preços.
// Datas nulas (zero) significam ausência de filtro.
type HistoryFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// FilterPoints devolve apenas os pontos dentro do período dos filtros.
func (h PriceHistory) FilterPoints(filters *HistoryFilters) []PricePoint {
	if filters == nil {
		return h.Points
	}

	filtered := make([]PricePoint, 0, len(h.Points))
	for _, point := range h.Points {
		if filters.StartDate != nil && !filters.StartDate.IsZero() && point.At.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && !filters.EndDate.IsZero() && point.At.After(*filters.EndDate) {
			continue
		}
		filtered = append(filtered, point)
	}

	return filtered
}

// Last retorna o ponto mais recente da série, ou nil se a série estiver vazia.
func (h PriceHistory) Last() *PricePoint {
	if len(h.Points) == 0 {
		return nil
	}
	last := h.Points[len(h.Points)-1]
	return &last
}
