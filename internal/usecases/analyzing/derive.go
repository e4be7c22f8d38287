package analyzing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/creative-fatigue-api/internal/domain"
)

// Limiares do gate de dados insuficientes: séries abaixo deles não recebem
// estatística alguma.
const (
	minSeriesDays        = 14
	minSeriesImpressions = 1000
)

// DeriveDay converte os contadores brutos de uma linha nas métricas de razão
// do dia, com semântica de zero seguro: denominador zero produz 0 para CTR e
// nil para CVR e NewReachPct.
func DeriveDay(row domain.DailyRow) domain.DerivedDay {
	day := domain.DerivedDay{
		Date:        row.Date.Format(time.DateOnly),
		Impressions: row.Impressions,
		Conversions: row.Conversions,
	}

	if row.Impressions > 0 {
		day.CTR = 100 * float64(row.LinkClicksEffective()) / float64(row.Impressions)

		newReach := 100 * float64(row.Reach) / float64(row.Impressions)
		day.NewReachPct = &newReach
	}

	if row.LandingPageViews > 0 {
		cvr := 100 * float64(row.Conversions) / float64(row.LandingPageViews)
		day.CVR = &cvr
	}

	day.Frequency = deriveFrequency(row)

	return day
}

// deriveFrequency usa o frequency reportado pela plataforma quando finito e
// não negativo; caso contrário recai em impressions/reach, e por fim em zero.
func deriveFrequency(row domain.DailyRow) float64 {
	if !math.IsNaN(row.FrequencyRaw) && !math.IsInf(row.FrequencyRaw, 0) && row.FrequencyRaw >= 0 {
		return row.FrequencyRaw
	}

	if row.Reach > 0 {
		return float64(row.Impressions) / float64(row.Reach)
	}

	return 0
}

// BuildSeries agrupa as linhas por anúncio e monta séries diárias densas em
// ordem ascendente de ad_id.
//
// Zero-fill: cada data ausente entre a primeira observação do anúncio e o fim
// do período é preenchida com uma linha toda zerada passada pelo derivador,
// de modo que CTR e frequência ficam em 0 e CVR/NewReachPct ficam nil. Datas
// anteriores à primeira observação não são preenchidas; datas fora do período
// são descartadas.
func BuildSeries(rows []domain.DailyRow, startDate, endDate time.Time) []*domain.AdSeries {
	type adGroup struct {
		first  domain.DailyRow
		byDate map[string]domain.DailyRow
	}

	groups := make(map[string]*adGroup)
	for _, row := range rows {
		if row.Date.Before(startDate) || row.Date.After(endDate) {
			continue
		}

		group, ok := groups[row.AdID]
		if !ok {
			group = &adGroup{first: row, byDate: make(map[string]domain.DailyRow)}
			groups[row.AdID] = group
		}

		if row.Date.Before(group.first.Date) {
			group.first = row
		}
		group.byDate[row.Date.Format(time.DateOnly)] = row
	}

	adIDs := make([]string, 0, len(groups))
	for adID := range groups {
		adIDs = append(adIDs, adID)
	}
	sort.Strings(adIDs)

	series := make([]*domain.AdSeries, 0, len(adIDs))
	for _, adID := range adIDs {
		group := groups[adID]
		series = append(series, buildAdSeries(adID, group.first, group.byDate, endDate))
	}

	return series
}

func buildAdSeries(adID string, first domain.DailyRow, byDate map[string]domain.DailyRow, endDate time.Time) *domain.AdSeries {
	s := &domain.AdSeries{
		AdID:           adID,
		AdName:         first.AdName,
		AdSetID:        first.AdSetID,
		AdSetName:      first.AdSetName,
		CampaignID:     first.CampaignID,
		CampaignName:   first.CampaignName,
		CampaignStatus: first.CampaignEffectiveStatus,
	}

	for date := first.Date; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		key := date.Format(time.DateOnly)
		row, ok := byDate[key]
		if !ok {
			// Dia sem entrega: linha zerada mantém a série densa
			row = domain.DailyRow{
				AdID: adID,
				Date: date,
			}
		}
		s.Days = append(s.Days, DeriveDay(row))
	}

	markInsufficient(s)

	return s
}

// markInsufficient aplica o gate de dados finos: menos de 14 dias ou menos de
// 1000 impressões acumuladas.
func markInsufficient(s *domain.AdSeries) {
	if len(s.Days) < minSeriesDays {
		reason := fmt.Sprintf("série com %d dias observados; mínimo de %d para análise", len(s.Days), minSeriesDays)
		s.InsufficientDataReason = &reason
		return
	}

	if total := s.TotalImpressions(); total < minSeriesImpressions {
		reason := fmt.Sprintf("série com %d impressões acumuladas; mínimo de %d para análise", total, minSeriesImpressions)
		s.InsufficientDataReason = &reason
	}
}
