// Package scenery gera os fundos decorativos da interface: a malha
// hexagonal e o campo de partículas guiado por ruído Perlin. A saída são
// documentos SVG autocontidos (animação via SMIL), servidos como assets.
package scenery

import (
	"math"
	"math/rand"
)

// Noise é um gerador de ruído Perlin 2D com tabela de permutação própria,
// determinístico para uma mesma seed.
type Noise struct {
	perm [512]int
}

// NewNoise monta a tabela de permutação a partir da seed.
func NewNoise(seed int64) *Noise {
	n := &Noise{}
	p := rand.New(rand.NewSource(seed)).Perm(256)
	for i := 0; i < 256; i++ {
		n.perm[i] = p[i]
		n.perm[i+256] = p[i]
	}
	return n
}

// At avalia o ruído na coordenada (x, y). O resultado fica em [-1, 1].
func (n *Noise) At(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)

	return lerp(x1, x2, v)
}

// fade é a curva de suavização 6t⁵-15t⁴+10t³ do Perlin clássico.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad projeta o deslocamento no gradiente escolhido pelo hash.
func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
