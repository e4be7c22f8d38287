package analyzing

import (
	"hash/fnv"
	"sort"

	"github.com/vfg2006/creative-fatigue-api/internal/domain"
	"github.com/vfg2006/creative-fatigue-api/pkg/stats"
)

// Limiares contratuais da regra de saturação do conjunto.
const (
	saturationDeclineRatioMin     = 0.66
	saturationCrossCorrelationMin = 0.5
	saturationNewReachMax         = 25.0

	declineCTRDropPct = -10.0

	// Margem de 20% sobre os três limiares para confiança alta
	highConfidenceMargin = 0.2

	highConfidencePValue = 0.01
	highConfidenceDays   = 21

	// Conjuntos maiores que isso têm a correlação cruzada limitada a um
	// subconjunto determinístico, para conter o custo O(ads²)
	maxCrossCorrelationAds = 64

	minPairOverlap = 3
)

// Recomendações determinísticas por status; a camada de narrativa por LLM é
// um colaborador externo e nunca participa da classificação.
var recommendationByStatus = map[domain.AdStatus]string{
	domain.StatusSaturated: "Audience exhaustion likely. Expand targeting or reduce budget; refreshing creatives alone will not recover performance.",
	domain.StatusFatigued:  "Creative fatigue on one or more ads. Rotate the declining creative(s); other ads in this set remain viable.",
	domain.StatusWarning:   "Early fatigue signals. Prepare replacement creatives within 7 days.",
	domain.StatusHealthy:   "No action required.",
}

// ClassifyAdSet agrega os vereditos dos anúncios de um conjunto: avalia a
// regra de saturação antes da fadiga individual e, quando ela dispara,
// promove todos os membros para saturated.
func ClassifyAdSet(adSetID, adSetName, campaignID string, verdicts []*domain.AdVerdict) *domain.AdSetVerdict {
	saturation, minOverlap := computeSaturation(verdicts)

	result := &domain.AdSetVerdict{
		AdSetID:    adSetID,
		AdSetName:  adSetName,
		CampaignID: campaignID,
		Saturation: saturation,
		Ads:        verdicts,
	}

	if isSaturated(saturation) {
		result.Status = domain.StatusSaturated
		for _, v := range verdicts {
			v.Status = domain.StatusSaturated
		}
	} else {
		statuses := make([]domain.AdStatus, 0, len(verdicts))
		for _, v := range verdicts {
			statuses = append(statuses, v.Status)
		}
		result.Status = domain.WorstStatus(statuses...)
	}

	result.Confidence = computeConfidence(result, verdicts, minOverlap)
	result.Recommendation = recommendationByStatus[result.Status]

	return result
}

// computeSaturation calcula os três insumos da regra: fração de anúncios em
// declínio, correlação cruzada média das séries de CTR e new reach médio.
// Retorna também o menor overlap usado em algum par, para a confiança.
func computeSaturation(verdicts []*domain.AdVerdict) (domain.SaturationStat, int) {
	stat := domain.SaturationStat{}

	declining := 0
	for _, v := range verdicts {
		if change := v.Trends.CTR.ChangePct; change != nil && *change <= declineCTRDropPct {
			declining++
		}
	}
	if len(verdicts) > 0 {
		stat.DeclineRatio = float64(declining) / float64(len(verdicts))
	}

	cross, minOverlap := crossCorrelation(verdicts)
	stat.CrossCorrelation = cross
	stat.AvgNewReachPct = averageNewReach(verdicts)

	return stat, minOverlap
}

func isSaturated(s domain.SaturationStat) bool {
	return s.DeclineRatio >= saturationDeclineRatioMin &&
		s.CrossCorrelation != nil && *s.CrossCorrelation >= saturationCrossCorrelationMin &&
		s.AvgNewReachPct != nil && *s.AvgNewReachPct <= saturationNewReachMax
}

// crossCorrelation calcula o r de Pearson médio entre as séries diárias de
// CTR de cada par de anúncios elegíveis, alinhadas por data (datas sem ponto
// em comum são puladas par a par). Séries insuficientes ficam de fora; são
// necessários ao menos dois anúncios elegíveis.
func crossCorrelation(verdicts []*domain.AdVerdict) (*float64, int) {
	eligible := make([]*domain.AdVerdict, 0, len(verdicts))
	for _, v := range verdicts {
		if v.InsufficientDataReason == nil {
			eligible = append(eligible, v)
		}
	}

	if len(eligible) < 2 {
		return nil, 0
	}

	eligible = capEligibleAds(eligible)

	type ctrByDate map[string]float64
	series := make([]ctrByDate, len(eligible))
	for i, v := range eligible {
		byDate := make(ctrByDate, len(v.Daily))
		for _, d := range v.Daily {
			byDate[d.Date] = d.CTR
		}
		series[i] = byDate
	}

	sum := 0.0
	pairs := 0
	minOverlap := 0

	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			var x, y []float64
			for _, d := range eligible[i].Daily {
				if other, ok := series[j][d.Date]; ok {
					x = append(x, d.CTR)
					y = append(y, other)
				}
			}

			if len(x) < minPairOverlap {
				continue
			}

			r, ok := stats.PearsonR(x, y)
			if !ok {
				continue
			}

			sum += r
			pairs++
			if minOverlap == 0 || len(x) < minOverlap {
				minOverlap = len(x)
			}
		}
	}

	if pairs == 0 {
		return nil, 0
	}

	mean := sum / float64(pairs)
	return &mean, minOverlap
}

// capEligibleAds limita a correlação cruzada a um subconjunto determinístico
// de anúncios, escolhido pelo hash FNV do ad_id para ser estável entre
// execuções.
func capEligibleAds(eligible []*domain.AdVerdict) []*domain.AdVerdict {
	if len(eligible) <= maxCrossCorrelationAds {
		return eligible
	}

	hashOf := func(adID string) uint64 {
		h := fnv.New64a()
		_, _ = h.Write([]byte(adID))
		return h.Sum64()
	}

	capped := make([]*domain.AdVerdict, len(eligible))
	copy(capped, eligible)
	sort.Slice(capped, func(i, j int) bool {
		hi, hj := hashOf(capped[i].AdID), hashOf(capped[j].AdID)
		if hi != hj {
			return hi < hj
		}
		return capped[i].AdID < capped[j].AdID
	})

	return capped[:maxCrossCorrelationAds]
}

// averageNewReach é a média de new_reach_pct sobre todos os anúncios e dias
// em que a métrica está definida.
func averageNewReach(verdicts []*domain.AdVerdict) *float64 {
	sum := 0.0
	count := 0
	for _, v := range verdicts {
		for _, d := range v.Daily {
			if d.NewReachPct != nil {
				sum += *d.NewReachPct
				count++
			}
		}
	}

	if count == 0 {
		return nil
	}

	mean := sum / float64(count)
	return &mean
}

// computeConfidence aplica a escada de confiança: alta quando a saturação
// supera os limiares com folga de 20% ou há fadiga estatisticamente forte;
// baixa quando a maioria dos anúncios tem menos de 14 dias ou a correlação
// cruzada se apoiou em menos de 10 pontos.
func computeConfidence(result *domain.AdSetVerdict, verdicts []*domain.AdVerdict, minOverlap int) string {
	s := result.Saturation

	if result.Status == domain.StatusSaturated &&
		s.DeclineRatio >= saturationDeclineRatioMin*(1+highConfidenceMargin) &&
		s.CrossCorrelation != nil && *s.CrossCorrelation >= saturationCrossCorrelationMin*(1+highConfidenceMargin) &&
		s.AvgNewReachPct != nil && *s.AvgNewReachPct <= saturationNewReachMax*(1-highConfidenceMargin) {
		return domain.ConfidenceHigh
	}

	for _, v := range verdicts {
		if v.Status == domain.StatusFatigued &&
			v.Correlation.P != nil && *v.Correlation.P < highConfidencePValue &&
			v.DaysObserved >= highConfidenceDays {
			return domain.ConfidenceHigh
		}
	}

	short := 0
	for _, v := range verdicts {
		if v.DaysObserved < minSeriesDays {
			short++
		}
	}
	if short*2 > len(verdicts) {
		return domain.ConfidenceLow
	}

	if minOverlap > 0 && minOverlap < minCorrelationPoints {
		return domain.ConfidenceLow
	}

	return domain.ConfidenceMedium
}
