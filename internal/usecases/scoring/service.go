package scoring

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/creative-fatigue-api/internal/domain"
	"github.com/vfg2006/creative-fatigue-api/pkg/stats"
	"github.com/vfg2006/creative-fatigue-api/pkg/utils"
)

// Constantes do modelo beta-binomial. São contratuais, não knobs.
const (
	pseudoCount     = 500.0 // K₀: força do prior em visitas equivalentes
	monteCarloDraws = 2000  // S: amostras da posterior por anúncio
	minPriorMass    = 1e-6

	provisionalVisits = 200
	provisionalSpend  = 20.0
)

// adEvidence acumula a evidência de conversão de um anúncio no período.
type adEvidence struct {
	adID             string
	adName           string
	landingPageViews int64
	outboundClicks   int64
	inlineLinkClicks int64
	conversions      int64
	spend            float64
}

// visits aplica a precedência de evidência observada na origem:
// landing_page_views > outbound_clicks > inline_link_clicks.
func (e *adEvidence) visits() int64 {
	if e.landingPageViews > 0 {
		return e.landingPageViews
	}
	if e.outboundClicks > 0 {
		return e.outboundClicks
	}
	if e.inlineLinkClicks > 0 {
		return e.inlineLinkClicks
	}
	return 0
}

// purchases limita as conversões ao intervalo [0, visits].
func (e *adEvidence) purchases() int64 {
	p := e.conversions
	if p < 0 {
		p = 0
	}
	if v := e.visits(); p > v {
		p = v
	}
	return p
}

// Service calcula o Creative Score: a probabilidade posterior de a taxa de
// conversão do anúncio superar o baseline da conta, ponderada pelo volume de
// evidência. A amostragem é determinística por anúncio dada a semente
// derivada das entradas, então reexecuções sobre os mesmos dados produzem
// exatamente os mesmos scores.
type Service struct{}

// NewService cria uma nova instância do scorer.
func NewService() *Service {
	return &Service{}
}

// ScoreAds pontua todos os anúncios presentes nas linhas, em ordem
// ascendente de ad_id.
func (s *Service) ScoreAds(ctx context.Context, rows []domain.DailyRow, startDate, endDate time.Time) ([]*domain.CreativeScore, error) {
	evidence := aggregateEvidence(rows, startDate, endDate)

	var totalVisits, totalPurchases int64
	for _, e := range evidence {
		totalVisits += e.visits()
		totalPurchases += e.purchases()
	}

	// θ₀: taxa de conversão agregada da conta, prior de todos os anúncios
	baseline := 0.0
	if totalVisits > 0 {
		baseline = utils.Clamp(float64(totalPurchases)/float64(totalVisits), 0, 1)
	}

	scores := make([]*domain.CreativeScore, 0, len(evidence))
	for _, e := range evidence {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scores = append(scores, s.scoreAd(e, baseline, startDate, endDate))
	}

	return scores, nil
}

func aggregateEvidence(rows []domain.DailyRow, startDate, endDate time.Time) []*adEvidence {
	byAd := make(map[string]*adEvidence)
	for _, row := range rows {
		if row.Date.Before(startDate) || row.Date.After(endDate) {
			continue
		}

		e, ok := byAd[row.AdID]
		if !ok {
			e = &adEvidence{adID: row.AdID, adName: row.AdName}
			byAd[row.AdID] = e
		}

		e.landingPageViews += row.LandingPageViews
		e.outboundClicks += row.OutboundClicks
		e.inlineLinkClicks += row.InlineLinkClicks
		e.conversions += row.Conversions
		e.spend += row.Spend
	}

	evidence := make([]*adEvidence, 0, len(byAd))
	for _, e := range byAd {
		evidence = append(evidence, e)
	}
	sort.Slice(evidence, func(i, j int) bool { return evidence[i].adID < evidence[j].adID })

	return evidence
}

func (s *Service) scoreAd(e *adEvidence, baseline float64, startDate, endDate time.Time) *domain.CreativeScore {
	visits := e.visits()
	purchases := e.purchases()

	score := &domain.CreativeScore{
		AdID:        e.adID,
		AdName:      e.adName,
		Visits:      visits,
		Purchases:   purchases,
		BaselineCVR: baseline,
		Label:       domain.ScoreLabelProvisional,
	}

	if visits == 0 {
		return score
	}

	// Prior Beta centrado no baseline com K₀ visitas equivalentes
	alpha0 := baseline * pseudoCount
	if alpha0 < minPriorMass {
		alpha0 = minPriorMass
	}
	beta0 := (1 - baseline) * pseudoCount
	if beta0 < minPriorMass {
		beta0 = minPriorMass
	}

	alpha := alpha0 + float64(purchases)
	beta := beta0 + float64(visits-purchases)

	seed := stats.SeedFromParts(
		e.adID,
		strconv.FormatInt(visits, 10),
		strconv.FormatInt(purchases, 10),
		strconv.FormatFloat(baseline, 'g', -1, 64),
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	sampler := stats.NewBetaSampler(alpha, beta, seed)
	probAbove := sampler.FractionAbove(baseline, monteCarloDraws)

	confidence := float64(visits) / (float64(visits) + pseudoCount)
	score.Confidence = confidence

	value := utils.Clamp(utils.RoundWithTwoDecimalPlace(100*probAbove*confidence), 0, 100)
	score.Score = &value

	if visits >= provisionalVisits && e.spend >= provisionalSpend {
		score.Label = domain.ScoreLabelConfident
	}

	return score
}
