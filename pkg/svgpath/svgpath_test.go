package svgpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowLine(t *testing.T) {
	points := []Point{{X: 0, Y: 10}, {X: 20, Y: 30}, {X: 40, Y: 5}}

	tests := []struct {
		name     string
		points   []Point
		mode     Mode
		expected string
	}{
		{
			name:     "vazio gera string vazia",
			points:   nil,
			mode:     ModeLinear,
			expected: "",
		},
		{
			name:     "ponto único gera apenas moveto",
			points:   []Point{{X: 3.5, Y: 7}},
			mode:     ModeLinear,
			expected: "M 3.5 7",
		},
		{
			name:     "linear",
			points:   points,
			mode:     ModeLinear,
			expected: "M 0 10 L 20 30 L 40 5",
		},
		{
			name:     "step usa segmentos H e V",
			points:   points,
			mode:     ModeStep,
			expected: "M 0 10 H 20 V 30 H 40 V 5",
		},
		{
			name:     "modo desconhecido cai no linear",
			points:   points,
			mode:     Mode("zigzag"),
			expected: "M 0 10 L 20 30 L 40 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlowLine(tt.points, tt.mode))
		})
	}
}

func TestFlowLineArc(t *testing.T) {
	path := FlowLine([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}, ModeArc)

	// Raio igual à metade da distância entre os pontos, lado alternado.
	assert.Equal(t, "M 0 0 A 5 5 0 0 0 10 0 A 5 5 0 0 1 20 0", path)
}

func TestFlowLineCubic(t *testing.T) {
	path := FlowLine([]Point{{X: 0, Y: 0}, {X: 30, Y: 12}}, ModeCubic)

	assert.Equal(t, "M 0 0 C 10 0 20 12 30 12", path)
}

func TestSparkline(t *testing.T) {
	t.Run("série vazia gera string vazia", func(t *testing.T) {
		assert.Equal(t, "", Sparkline(nil, 100, 40))
		assert.Equal(t, "", Sparkline([]float64{}, 100, 40))
	})

	t.Run("extremos tocam as bordas da altura", func(t *testing.T) {
		out := Sparkline([]float64{1, 3, 2}, 100, 40)
		coords := strings.Split(out, " ")

		assert.Len(t, coords, 3)
		assert.Equal(t, "0,40", coords[0])  // mínimo na base
		assert.Equal(t, "50,0", coords[1])  // máximo no topo
		assert.Equal(t, "100,20", coords[2])
	})

	t.Run("série constante vira linha no meio", func(t *testing.T) {
		out := Sparkline([]float64{5, 5, 5}, 90, 40)
		assert.Equal(t, "0,20 45,20 90,20", out)
	})

	t.Run("valor único fica na origem do eixo X", func(t *testing.T) {
		assert.Equal(t, "0,20", Sparkline([]float64{7}, 100, 40))
	})
}
