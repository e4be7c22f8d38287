package analyzing

import (
	"github.com/vfg2006/creative-fatigue-api/internal/domain"
	"github.com/vfg2006/creative-fatigue-api/pkg/stats"
)

// Limiares da análise por anúncio. São os valores contratuais da origem, não
// parâmetros de tuning.
const (
	trendStableBand = 5.0 // |variação| ≤ 5% é estável

	fatigueCTRDropPct     = -15.0
	fatigueFrequencyRise  = 15.0
	fatigueCorrelationMax = -0.5
	warningCTRDropPct     = -10.0
	warningFrequencyRise  = 20.0
	warningCorrelationMax = -0.3
	significanceLevel     = 0.05
	minCorrelationPoints  = 10
)

// AnalyzeAd produz o diagnóstico individual de um anúncio a partir da sua
// série densa: tendências entre o primeiro e o último terço, correlação de
// Pearson entre frequência e CTR com p-valor bicaudal, e o status.
//
// Séries marcadas como insuficientes saem como healthy com o motivo
// preenchido e nenhuma estatística calculada.
func AnalyzeAd(s *domain.AdSeries) *domain.AdVerdict {
	verdict := &domain.AdVerdict{
		AdID:                   s.AdID,
		AdName:                 s.AdName,
		AdSetID:                s.AdSetID,
		CampaignID:             s.CampaignID,
		Status:                 domain.StatusHealthy,
		InsufficientDataReason: s.InsufficientDataReason,
		DaysObserved:           len(s.Days),
		Daily:                  s.Days,
		Trends: domain.AdTrends{
			CTR:       domain.TrendStat{Direction: domain.TrendStable},
			Frequency: domain.TrendStat{Direction: domain.TrendStable},
			NewReach:  domain.TrendStat{Direction: domain.TrendStable},
		},
		Correlation: domain.CorrelationStat{Points: len(s.Days)},
	}

	if s.InsufficientDataReason != nil {
		return verdict
	}

	verdict.Trends = domain.AdTrends{
		CTR:       computeTrend(s.Days, func(d domain.DerivedDay) *float64 { v := d.CTR; return &v }),
		Frequency: computeTrend(s.Days, func(d domain.DerivedDay) *float64 { v := d.Frequency; return &v }),
		NewReach:  computeTrend(s.Days, func(d domain.DerivedDay) *float64 { return d.NewReachPct }),
	}

	verdict.Metrics = domain.VerdictMetrics{
		Current: domain.MetricsWindow{
			CTR:         verdict.Trends.CTR.MeanLate,
			Frequency:   verdict.Trends.Frequency.MeanLate,
			NewReachPct: windowNewReach(verdict.Trends.NewReach.MeanLate, s.Days),
		},
		Baseline: domain.MetricsWindow{
			CTR:         verdict.Trends.CTR.MeanEarly,
			Frequency:   verdict.Trends.Frequency.MeanEarly,
			NewReachPct: windowNewReach(verdict.Trends.NewReach.MeanEarly, s.Days),
		},
	}

	verdict.Correlation = computeCorrelation(s.Days)
	verdict.Status = assignAdStatus(verdict)

	return verdict
}

// computeTrend compara a média do primeiro terço da série com a do último.
// ChangePct fica nil quando a média inicial não é positiva.
func computeTrend(days []domain.DerivedDay, value func(domain.DerivedDay) *float64) domain.TrendStat {
	n := len(days)
	w := n / 3
	if w < 1 {
		return domain.TrendStat{Direction: domain.TrendStable}
	}

	meanEarly := meanDefined(days[:w], value)
	meanLate := meanDefined(days[n-w:], value)

	trend := domain.TrendStat{
		Direction: domain.TrendStable,
		MeanEarly: meanEarly,
		MeanLate:  meanLate,
	}

	if meanEarly > 0 {
		// Valor cru: os limiares contratuais se aplicam antes de qualquer
		// arredondamento, que acontece só na montagem do documento
		change := 100 * (meanLate - meanEarly) / meanEarly
		trend.ChangePct = &change

		if change > trendStableBand {
			trend.Direction = domain.TrendRising
		} else if change < -trendStableBand {
			trend.Direction = domain.TrendFalling
		}
	}

	return trend
}

// meanDefined calcula a média ignorando valores não definidos (nil).
func meanDefined(days []domain.DerivedDay, value func(domain.DerivedDay) *float64) float64 {
	sum := 0.0
	count := 0
	for _, d := range days {
		if v := value(d); v != nil {
			sum += *v
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// windowNewReach transforma a média de new reach da janela em ponteiro,
// preservando nil quando a série inteira não tem o dado definido.
func windowNewReach(mean float64, days []domain.DerivedDay) *float64 {
	for _, d := range days {
		if d.NewReachPct != nil {
			v := mean
			return &v
		}
	}
	return nil
}

// computeCorrelation calcula Pearson entre frequência e CTR dia a dia.
// Exige ao menos 10 pontos pareados; degenerações numéricas anulam apenas a
// estatística, nunca a análise.
func computeCorrelation(days []domain.DerivedDay) domain.CorrelationStat {
	result := domain.CorrelationStat{Points: len(days)}

	if len(days) < minCorrelationPoints {
		return result
	}

	freq := make([]float64, len(days))
	ctr := make([]float64, len(days))
	for i, d := range days {
		freq[i] = d.Frequency
		ctr[i] = d.CTR
	}

	r, ok := stats.PearsonR(freq, ctr)
	if !ok {
		return result
	}
	result.R = &r

	p, ok := stats.TwoTailedPValue(r, len(days))
	if !ok {
		return result
	}
	result.P = &p
	result.Significant = p < significanceLevel

	return result
}

// assignAdStatus aplica as regras de status por anúncio. Correlações não
// significativas degradam no máximo para warning.
func assignAdStatus(v *domain.AdVerdict) domain.AdStatus {
	ctrChange := v.Trends.CTR.ChangePct
	freqChange := v.Trends.Frequency.ChangePct
	r := v.Correlation.R

	if ctrChange != nil && freqChange != nil && r != nil &&
		*ctrChange <= fatigueCTRDropPct &&
		*freqChange >= fatigueFrequencyRise &&
		*r <= fatigueCorrelationMax &&
		v.Correlation.Significant {
		return domain.StatusFatigued
	}

	if ctrChange != nil && *ctrChange <= warningCTRDropPct {
		return domain.StatusWarning
	}

	if freqChange != nil && r != nil &&
		*freqChange >= warningFrequencyRise &&
		*r <= warningCorrelationMax {
		return domain.StatusWarning
	}

	return domain.StatusHealthy
}
