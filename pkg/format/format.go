// Package format concentra as funções de formatação de valores exibidos
// nas páginas e nos payloads do dashboard. Todas são funções puras; as mais
// caras passam por um cache de memoização limitado.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Placeholder exibido quando o valor não é um número finito.
const Placeholder = "—"

// Sinal de menos tipográfico (U+2212) usado nos percentuais com sinal.
const minusSign = "−"

const memoLimit = 512

var memo = struct {
	sync.RWMutex
	entries map[string]string
}{entries: make(map[string]string)}

func memoized(key string, compute func() string) string {
	memo.RLock()
	cached, ok := memo.entries[key]
	memo.RUnlock()
	if ok {
		return cached
	}

	value := compute()

	memo.Lock()
	// Cache simples: ao estourar o limite, descarta tudo e recomeça.
	if len(memo.entries) >= memoLimit {
		memo.entries = make(map[string]string)
	}
	memo.entries[key] = value
	memo.Unlock()

	return value
}

// Currency formata um valor em dólares com duas casas e separador de milhar.
// Valores não finitos retornam o placeholder em vez de propagar NaN à tela.
func Currency(v float64) string {
	if !isFinite(v) {
		return Placeholder
	}

	return memoized("currency|"+strconv.FormatFloat(v, 'g', -1, 64), func() string {
		negative := v < 0
		body := groupThousands(fmt.Sprintf("%.2f", math.Abs(v)))
		if negative {
			return "-$" + body
		}
		return "$" + body
	})
}

// Percent formata uma fração como percentual com duas casas.
// Com signed=true, positivos ganham "+" e negativos usam o sinal
// tipográfico U+2212, como no restante do dashboard.
func Percent(v float64, signed bool) string {
	if !isFinite(v) {
		return Placeholder
	}

	key := fmt.Sprintf("percent|%t|%s", signed, strconv.FormatFloat(v, 'g', -1, 64))
	return memoized(key, func() string {
		body := fmt.Sprintf("%.2f%%", math.Abs(v)*100)
		switch {
		case signed && v < 0:
			return minusSign + body
		case signed && v > 0:
			return "+" + body
		case v < 0:
			return "-" + body
		default:
			return body
		}
	})
}

// Energy formata uma quantidade em kWh, subindo a escala para MWh/GWh
// quando o valor passa de mil unidades da escala anterior.
func Energy(kwh float64) string {
	if !isFinite(kwh) {
		return Placeholder
	}

	return memoized("energy|"+strconv.FormatFloat(kwh, 'g', -1, 64), func() string {
		abs := math.Abs(kwh)
		switch {
		case abs >= 1e6:
			return fmt.Sprintf("%.1f GWh", kwh/1e6)
		case abs >= 1e3:
			return fmt.Sprintf("%.1f MWh", kwh/1e3)
		default:
			return fmt.Sprintf("%.0f kWh", kwh)
		}
	})
}

// Compact abrevia números grandes para rótulos curtos (1.2K, 3.4M, 5.6B).
func Compact(v float64) string {
	if !isFinite(v) {
		return Placeholder
	}

	return memoized("compact|"+strconv.FormatFloat(v, 'g', -1, 64), func() string {
		abs := math.Abs(v)
		switch {
		case abs >= 1e9:
			return trimZero(fmt.Sprintf("%.1f", v/1e9)) + "B"
		case abs >= 1e6:
			return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
		case abs >= 1e3:
			return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "K"
		default:
			return trimZero(fmt.Sprintf("%.1f", v))
		}
	})
}

const (
	addressPrefixLen = 6
	addressSuffixLen = 4
)

// TruncateAddress encurta hashes e endereços longos mantendo início e fim.
// Strings que cabem na janela de truncamento voltam intactas.
func TruncateAddress(s string) string {
	if len(s) <= addressPrefixLen+addressSuffixLen+1 {
		return s
	}
	return s[:addressPrefixLen] + "…" + s[len(s)-addressSuffixLen:]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// groupThousands insere separadores de milhar na parte inteira de um
// número decimal já formatado com ponto.
func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var sb strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			sb.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(intPart[i : i+3])
		}
		intPart = sb.String()
	}

	if hasFrac {
		return intPart + "." + fracPart
	}
	return intPart
}
