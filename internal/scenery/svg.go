package scenery

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/heliogrid/heliogrid-web/pkg/svgpath"
)

// Params controla a geração de um fundo decorativo.
type Params struct {
	Width    int
	Height   int
	Seed     int64
	Animated bool
}

const (
	hexRadius     = 28.0
	noiseScale    = 0.012
	fieldScale    = 0.004
	particleSteps = 24
	particleStep  = 16.0
)

// HexGridSVG monta a malha hexagonal de fundo. A opacidade de cada célula
// vem do ruído avaliado no centro, o que dá o aspecto de "clareiras".
func HexGridSVG(p Params) string {
	p = p.normalized()
	noise := NewNoise(p.Seed)

	cols := int(float64(p.Width)/(hexRadius*math.Sqrt(3))) + 2
	rows := int(float64(p.Height)/(hexRadius*1.5)) + 2

	var sb strings.Builder
	openSVG(&sb, p)
	sb.WriteString(`<g fill="none" stroke="#38bdf8" stroke-width="1">`)

	for _, cell := range HexLattice(cols, rows, hexRadius) {
		vertices := cell.Vertices(hexRadius - 1.5)

		points := make([]string, len(vertices))
		for i, v := range vertices {
			points[i] = fmt.Sprintf("%.1f,%.1f", v.X, v.Y)
		}

		level := (noise.At(cell.Center.X*noiseScale, cell.Center.Y*noiseScale) + 1) / 2
		opacity := 0.06 + 0.3*level

		fmt.Fprintf(&sb, `<polygon points="%s" opacity="%.2f">`, strings.Join(points, " "), opacity)
		if p.Animated {
			// Pulso lento, defasado pela posição para a malha não piscar em bloco.
			duration := 6 + 6*level
			begin := math.Mod(cell.Center.X+cell.Center.Y, 5)
			fmt.Fprintf(&sb,
				`<animate attributeName="opacity" values="%.2f;%.2f;%.2f" dur="%.1fs" begin="%.1fs" repeatCount="indefinite"/>`,
				opacity, opacity*0.3, opacity, duration, begin)
		}
		sb.WriteString(`</polygon>`)
	}

	sb.WriteString(`</g></svg>`)
	return sb.String()
}

// ParticleFieldSVG emite o campo de partículas. Cada partícula segue o
// campo vetorial derivado do ruído; o trajeto vira um path de animateMotion.
func ParticleFieldSVG(p Params) string {
	p = p.normalized()
	noise := NewNoise(p.Seed)
	rng := rand.New(rand.NewSource(p.Seed))

	count := p.Width * p.Height / 9000
	if count < 12 {
		count = 12
	}
	if count > 240 {
		count = 240
	}

	var sb strings.Builder
	openSVG(&sb, p)
	sb.WriteString(`<g fill="#7dd3fc">`)

	for i := 0; i < count; i++ {
		x := rng.Float64() * float64(p.Width)
		y := rng.Float64() * float64(p.Height)
		radius := 0.8 + rng.Float64()*1.8
		opacity := 0.25 + rng.Float64()*0.55

		if !p.Animated {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" opacity="%.2f"/>`, x, y, radius, opacity)
			continue
		}

		trail := tracePath(noise, x, y)
		path := svgpath.FlowLine(trail, svgpath.ModeCubic)
		duration := 18 + rng.Float64()*22

		fmt.Fprintf(&sb, `<circle r="%.1f" opacity="%.2f">`, radius, opacity)
		fmt.Fprintf(&sb, `<animateMotion dur="%.1fs" repeatCount="indefinite" path="%s"/>`, duration, path)
		sb.WriteString(`</circle>`)
	}

	sb.WriteString(`</g></svg>`)
	return sb.String()
}

// tracePath integra o campo vetorial do ruído a partir do ponto inicial.
func tracePath(noise *Noise, x, y float64) []svgpath.Point {
	points := make([]svgpath.Point, 0, particleSteps+1)
	points = append(points, svgpath.Point{X: x, Y: y})

	for i := 0; i < particleSteps; i++ {
		angle := noise.At(x*fieldScale, y*fieldScale) * 2 * math.Pi
		x += math.Cos(angle) * particleStep
		y += math.Sin(angle) * particleStep
		points = append(points, svgpath.Point{X: x, Y: y})
	}

	return points
}

func openSVG(sb *strings.Builder, p Params) {
	fmt.Fprintf(sb,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		p.Width, p.Height, p.Width, p.Height)
}

func (p Params) normalized() Params {
	if p.Width <= 0 {
		p.Width = 1440
	}
	if p.Height <= 0 {
		p.Height = 720
	}
	if p.Width > 3840 {
		p.Width = 3840
	}
	if p.Height > 2160 {
		p.Height = 2160
	}
	return p
}
