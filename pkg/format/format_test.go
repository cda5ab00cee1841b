package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "zero", value: 0, expected: "$0.00"},
		{name: "valor simples", value: 12.5, expected: "$12.50"},
		{name: "separador de milhar", value: 1234567.891, expected: "$1,234,567.89"},
		{name: "negativo", value: -42.1, expected: "-$42.10"},
		{name: "NaN usa placeholder", value: math.NaN(), expected: Placeholder},
		{name: "infinito usa placeholder", value: math.Inf(1), expected: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		signed   bool
		expected string
	}{
		{name: "negativo com sinal tipográfico", value: -0.05, signed: true, expected: "−5.00%"},
		{name: "positivo com sinal", value: 0.1234, signed: true, expected: "+12.34%"},
		{name: "zero com sinal", value: 0, signed: true, expected: "0.00%"},
		{name: "sem sinal", value: 0.07, signed: false, expected: "7.00%"},
		{name: "negativo sem sinal", value: -0.07, signed: false, expected: "-7.00%"},
		{name: "NaN usa placeholder", value: math.NaN(), signed: true, expected: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.value, tt.signed))
		})
	}
}

func TestEnergy(t *testing.T) {
	assert.Equal(t, "850 kWh", Energy(850))
	assert.Equal(t, "1.5 MWh", Energy(1500))
	assert.Equal(t, "2.3 GWh", Energy(2_300_000))
	assert.Equal(t, Placeholder, Energy(math.Inf(-1)))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "950", Compact(950))
	assert.Equal(t, "1.2K", Compact(1200))
	assert.Equal(t, "3.4M", Compact(3_400_000))
	assert.Equal(t, "5.6B", Compact(5_600_000_000))
	assert.Equal(t, "2K", Compact(2000))
}

func TestTruncateAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hash longo é truncado no meio",
			input:    "0x8f3cf7ad23cd3cadbd9735aff958023239c6a063",
			expected: "0x8f3c…a063",
		},
		{
			name:     "string curta volta intacta",
			input:    "0xabc123",
			expected: "0xabc123",
		},
		{
			name:     "string vazia volta intacta",
			input:    "",
			expected: "",
		},
		{
			name:     "exatamente na janela volta intacta",
			input:    "12345678901",
			expected: "12345678901",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateAddress(tt.input))
		})
	}
}

func TestMemoizationIsStable(t *testing.T) {
	first := Currency(1234.56)
	second := Currency(1234.56)
	assert.Equal(t, first, second)

	// O cache não pode vazar entre funções com o mesmo valor de entrada.
	assert.NotEqual(t, Currency(0.5), Percent(0.5, false))
}
