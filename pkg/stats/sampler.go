package stats

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SeedFromParts deriva uma semente estável (FNV-1a de 64 bits) a partir das
// partes informadas, separadas por '|'. Entradas idênticas produzem sempre a
// mesma semente, o que torna a amostragem reproduzível entre execuções.
func SeedFromParts(parts ...string) uint64 {
	h := fnv.New64a()
	for i, part := range parts {
		if i > 0 {
			_, _ = h.Write([]byte{'|'})
		}
		_, _ = h.Write([]byte(part))
	}
	return h.Sum64()
}

// BetaSampler sorteia de uma Beta(α, β) com fonte de aleatoriedade própria e
// determinística. A distuv.Beta amostra via razão de duas Gamma
// (Marsaglia–Tsang), Beta = Γ(α)/(Γ(α)+Γ(β)).
type BetaSampler struct {
	dist distuv.Beta
}

// NewBetaSampler cria um sampler Beta(alpha, beta) semeado com seed.
func NewBetaSampler(alpha, beta float64, seed uint64) *BetaSampler {
	return &BetaSampler{
		dist: distuv.Beta{
			Alpha: alpha,
			Beta:  beta,
			Src:   rand.NewSource(seed),
		},
	}
}

// Rand retorna a próxima amostra da posterior.
func (s *BetaSampler) Rand() float64 {
	return s.dist.Rand()
}

// FractionAbove sorteia n amostras e retorna a fração delas acima de
// threshold.
func (s *BetaSampler) FractionAbove(threshold float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	above := 0
	for i := 0; i < n; i++ {
		if s.dist.Rand() > threshold {
			above++
		}
	}

	return float64(above) / float64(n)
}
