package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PearsonR calcula o coeficiente de correlação de Pearson entre duas amostras
// pareadas. Retorna (0, false) quando há menos de dois pontos ou quando a
// estatística degenera (variância zero em uma das séries).
func PearsonR(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}

	// Erros de arredondamento podem empurrar r ligeiramente para fora de [-1, 1]
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return r, true
}

// TwoTailedPValue calcula o p-valor bicaudal de um r observado sob a hipótese
// nula de correlação zero, via t = r·√((n−2)/(1−r²)) contra a t de Student com
// n−2 graus de liberdade. A CDF da distuv.StudentsT é avaliada pela beta
// incompleta regularizada, numericamente estável para qualquer n.
func TwoTailedPValue(r float64, n int) (float64, bool) {
	if n < 3 {
		return 0, false
	}

	denom := 1 - r*r
	if denom <= 0 {
		// |r| == 1: a estatística t diverge e o p-valor colapsa para zero
		return 0, true
	}

	t := r * math.Sqrt(float64(n-2)/denom)
	if math.IsNaN(t) {
		return 0, false
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	p := 2 * (1 - dist.CDF(math.Abs(t)))

	// Proteção contra ruído numérico da cauda
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	return p, true
}
