package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearsonR(t *testing.T) {
	tests := []struct {
		name      string
		x         []float64
		y         []float64
		expectedR float64
		expectOK  bool
	}{
		{
			name:      "Correlação positiva perfeita",
			x:         []float64{1, 2, 3, 4, 5},
			y:         []float64{2, 4, 6, 8, 10},
			expectedR: 1.0,
			expectOK:  true,
		},
		{
			name:      "Correlação negativa perfeita",
			x:         []float64{1, 2, 3, 4, 5},
			y:         []float64{10, 8, 6, 4, 2},
			expectedR: -1.0,
			expectOK:  true,
		},
		{
			name:      "Sem correlação aparente",
			x:         []float64{1, 2, 3, 4, 5, 6, 7, 8},
			y:         []float64{3, 1, 4, 1, 5, 9, 2, 6},
			expectedR: 0,
			expectOK:  true,
		},
		{
			name:     "Série constante degenera",
			x:        []float64{2, 2, 2, 2, 2},
			y:        []float64{1, 2, 3, 4, 5},
			expectOK: false,
		},
		{
			name:     "Menos de dois pontos",
			x:        []float64{1},
			y:        []float64{2},
			expectOK: false,
		},
		{
			name:     "Tamanhos diferentes",
			x:        []float64{1, 2, 3},
			y:        []float64{1, 2},
			expectOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := PearsonR(tt.x, tt.y)

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK && tt.name != "Sem correlação aparente" {
				assert.InDelta(t, tt.expectedR, r, 1e-9)
			}
			if tt.expectOK {
				assert.GreaterOrEqual(t, r, -1.0)
				assert.LessOrEqual(t, r, 1.0)
			}
		})
	}
}

func TestTwoTailedPValue(t *testing.T) {
	t.Run("Correlação perfeita colapsa o p-valor para zero", func(t *testing.T) {
		p, ok := TwoTailedPValue(-1.0, 10)
		assert.True(t, ok)
		assert.Equal(t, 0.0, p)
	})

	t.Run("Correlação forte com muitos pontos é significante", func(t *testing.T) {
		p, ok := TwoTailedPValue(-0.9, 20)
		assert.True(t, ok)
		assert.Less(t, p, 0.001)
	})

	t.Run("Correlação fraca não é significante", func(t *testing.T) {
		p, ok := TwoTailedPValue(0.1, 10)
		assert.True(t, ok)
		assert.Greater(t, p, 0.05)
	})

	t.Run("P-valor decresce com o módulo de r", func(t *testing.T) {
		pWeak, ok := TwoTailedPValue(-0.3, 15)
		assert.True(t, ok)
		pStrong, ok := TwoTailedPValue(-0.8, 15)
		assert.True(t, ok)
		assert.Less(t, pStrong, pWeak)
	})

	t.Run("P-valor decresce com o número de pontos", func(t *testing.T) {
		pFew, ok := TwoTailedPValue(0.5, 10)
		assert.True(t, ok)
		pMany, ok := TwoTailedPValue(0.5, 40)
		assert.True(t, ok)
		assert.Less(t, pMany, pFew)
	})

	t.Run("Menos de três pontos não tem p-valor", func(t *testing.T) {
		_, ok := TwoTailedPValue(0.5, 2)
		assert.False(t, ok)
	})

	t.Run("P-valor sempre em [0, 1]", func(t *testing.T) {
		for _, r := range []float64{-0.99, -0.5, 0, 0.5, 0.99} {
			p, ok := TwoTailedPValue(r, 14)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	})
}
