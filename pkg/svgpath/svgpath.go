// Package svgpath gera strings de path SVG para os diagramas decorativos
// de "fluxo de energia" e para os sparklines do dashboard. Funções puras,
// sem estado e sem condições de erro: entradas vazias geram saídas vazias.
package svgpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/heliogrid/heliogrid-web/pkg/utils"
)

// Point é uma coordenada 2D no espaço do viewBox.
type Point struct {
	X float64
	Y float64
}

// Mode define a interpolação usada entre os pontos do fluxo.
type Mode string

const (
	ModeLinear Mode = "linear"
	ModeStep   Mode = "step"
	ModeArc    Mode = "arc"
	ModeCubic  Mode = "cubic"
)

// FlowLine converte uma sequência de pontos em um atributo "d" de path SVG.
// Modos desconhecidos caem no linear. Menos de dois pontos não formam linha.
func FlowLine(points []Point, mode Mode) string {
	if len(points) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %s %s", num(points[0].X), num(points[0].Y))

	if len(points) == 1 {
		return sb.String()
	}

	switch mode {
	case ModeStep:
		for _, p := range points[1:] {
			fmt.Fprintf(&sb, " H %s V %s", num(p.X), num(p.Y))
		}
	case ModeArc:
		for i, p := range points[1:] {
			prev := points[i]
			radius := distance(prev, p) / 2
			// Alterna o lado do arco para a linha "serpentear" entre os nós.
			sweep := i % 2
			fmt.Fprintf(&sb, " A %s %s 0 0 %d %s %s", num(radius), num(radius), sweep, num(p.X), num(p.Y))
		}
	case ModeCubic:
		for i, p := range points[1:] {
			prev := points[i]
			dx := (p.X - prev.X) / 3
			fmt.Fprintf(&sb, " C %s %s %s %s %s %s",
				num(prev.X+dx), num(prev.Y),
				num(p.X-dx), num(p.Y),
				num(p.X), num(p.Y))
		}
	default:
		for _, p := range points[1:] {
			fmt.Fprintf(&sb, " L %s %s", num(p.X), num(p.Y))
		}
	}

	return sb.String()
}

// Sparkline projeta a série de valores em um atributo "points" de polyline,
// normalizando a amplitude para a altura dada. Série vazia gera string vazia.
func Sparkline(values []float64, width, height float64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	var sb strings.Builder
	for i, v := range values {
		x := 0.0
		if len(values) > 1 {
			x = float64(i) / float64(len(values)-1) * width
		}

		// Série constante vira uma linha no meio da altura.
		y := height / 2
		if max > min {
			y = height - (v-min)/(max-min)*height
		}

		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s,%s", num(x), num(y))
	}

	return sb.String()
}

// num formata coordenadas com até duas casas, sem zeros à direita.
func num(v float64) string {
	rounded := utils.RoundWithTwoDecimalPlace(v)
	if rounded == math.Trunc(rounded) {
		return fmt.Sprintf("%d", int64(rounded))
	}
	return strings.TrimRight(fmt.Sprintf("%.2f", rounded), "0")
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
