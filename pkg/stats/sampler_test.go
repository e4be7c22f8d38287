package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedFromParts(t *testing.T) {
	t.Run("Entradas idênticas produzem a mesma semente", func(t *testing.T) {
		a := SeedFromParts("ad1", "100", "5")
		b := SeedFromParts("ad1", "100", "5")
		assert.Equal(t, a, b)
	})

	t.Run("Entradas diferentes produzem sementes diferentes", func(t *testing.T) {
		a := SeedFromParts("ad1", "100", "5")
		b := SeedFromParts("ad2", "100", "5")
		assert.NotEqual(t, a, b)
	})

	t.Run("O separador impede colisões por concatenação", func(t *testing.T) {
		a := SeedFromParts("ab", "c")
		b := SeedFromParts("a", "bc")
		assert.NotEqual(t, a, b)
	})
}

func TestBetaSampler(t *testing.T) {
	t.Run("Mesma semente produz a mesma sequência de amostras", func(t *testing.T) {
		s1 := NewBetaSampler(5, 3, 42)
		s2 := NewBetaSampler(5, 3, 42)

		for i := 0; i < 100; i++ {
			assert.Equal(t, s1.Rand(), s2.Rand())
		}
	})

	t.Run("Sementes diferentes divergem", func(t *testing.T) {
		s1 := NewBetaSampler(5, 3, 1)
		s2 := NewBetaSampler(5, 3, 2)

		equal := true
		for i := 0; i < 10; i++ {
			if s1.Rand() != s2.Rand() {
				equal = false
			}
		}
		assert.False(t, equal)
	})

	t.Run("FractionAbove reflete a massa da distribuição", func(t *testing.T) {
		// Beta(50, 1) concentra quase toda a massa perto de 1
		high := NewBetaSampler(50, 1, 7).FractionAbove(0.5, 2000)
		assert.Greater(t, high, 0.95)

		// Beta(1, 50) concentra quase toda a massa perto de 0
		low := NewBetaSampler(1, 50, 7).FractionAbove(0.5, 2000)
		assert.Less(t, low, 0.05)
	})

	t.Run("FractionAbove fica em [0, 1]", func(t *testing.T) {
		f := NewBetaSampler(2, 2, 9).FractionAbove(0.5, 500)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	})

	t.Run("FractionAbove com zero amostras retorna zero", func(t *testing.T) {
		assert.Equal(t, 0.0, NewBetaSampler(2, 2, 9).FractionAbove(0.5, 0))
	})
}
