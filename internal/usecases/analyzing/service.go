package analyzing

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/creative-fatigue-api/internal/domain"
	"github.com/vfg2006/creative-fatigue-api/pkg/log"
	"github.com/vfg2006/creative-fatigue-api/pkg/utils"
)

// Service implementa Analyzer como um pipeline puro sobre a fonte injetada:
// loader → derivador → (análise por anúncio ∥ creative scorer) →
// classificador de conjuntos → documento.
type Service struct {
	source DailyRowSource
	scorer CreativeScorer

	// Injetáveis para reprodutibilidade em testes
	now         func() time.Time
	newReportID func() (string, error)
}

// NewService cria uma nova instância do serviço de análise.
func NewService(source DailyRowSource, scorer CreativeScorer) *Service {
	return &Service{
		source:      source,
		scorer:      scorer,
		now:         time.Now,
		newReportID: utils.GenerateReportID,
	}
}

// WithClock substitui o relógio do serviço. Útil em testes de snapshot.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithReportIDGenerator substitui o gerador de report_id.
func (s *Service) WithReportIDGenerator(gen func() (string, error)) *Service {
	s.newReportID = gen
	return s
}

// Analyze executa uma invocação completa. A invocação é tudo-ou-nada: ou o
// documento completo é emitido, ou um único AnalysisError. Nenhum estado é
// compartilhado entre invocações.
func (s *Service) Analyze(ctx context.Context, params domain.AnalysisParams) (*domain.AnalysisReport, error) {
	logger := log.ForContext(ctx)

	if err := validateParams(params); err != nil {
		return nil, err
	}

	rows, err := s.source.FetchDailyRows(ctx, params.StoreID, params.StartDate, params.EndDate, params.IncludeInactive)
	if err != nil {
		logger.WithError(err).WithField("store_id", params.StoreID).Error("análise: falha ao ler linhas diárias da fonte")
		return nil, NewSourceUnavailable(err)
	}

	series := BuildSeries(rows, params.StartDate, params.EndDate)

	// Anúncios em ordem ascendente de ad_id para saída estável byte a byte
	verdicts := make([]*domain.AdVerdict, 0, len(series))
	for _, adSeries := range series {
		if ctx.Err() != nil {
			return nil, NewCancelled()
		}
		verdicts = append(verdicts, AnalyzeAd(adSeries))
	}

	adSets, err := s.classifyAdSets(ctx, series, verdicts)
	if err != nil {
		return nil, err
	}

	// A classificação acima compara valores crus; o arredondamento a duas
	// casas acontece apenas no documento emitido
	roundAdSetVerdicts(adSets)

	if ctx.Err() != nil {
		return nil, NewCancelled()
	}

	scores, err := s.scorer.ScoreAds(ctx, rows, params.StartDate, params.EndDate)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewCancelled()
		}
		return nil, NewInternal(err)
	}

	reportID, err := s.newReportID()
	if err != nil {
		return nil, NewInternal(err)
	}

	report := &domain.AnalysisReport{
		ReportID:    reportID,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		DateRange: domain.DateRange{
			Start: params.StartDate.Format(time.DateOnly),
			End:   params.EndDate.Format(time.DateOnly),
		},
		Summary:        summarize(adSets),
		Campaigns:      groupCampaigns(series, adSets),
		AdSets:         adSets,
		CreativeScores: scores,
	}

	logger.WithFields(log.Fields{
		"store_id":  params.StoreID,
		"report_id": reportID,
		"ads":       report.Summary.Total,
		"ad_sets":   len(adSets),
	}).Info("análise: documento gerado")

	return report, nil
}

// validateParams aplica as precondições da invocação.
func validateParams(params domain.AnalysisParams) *AnalysisError {
	if params.StoreID == "" {
		return NewInvalidInput("store_id é obrigatório")
	}

	if params.EndDate.Before(params.StartDate) {
		return NewInvalidRange("a data final não pode ser anterior à inicial")
	}

	days := params.RangeDays()
	if days < domain.MinRangeDays {
		return NewInvalidInput("o período mínimo de análise é de 14 dias")
	}
	if days > domain.MaxRangeDays {
		return NewInvalidRange("o período máximo de análise é de 365 dias")
	}

	return nil
}

// classifyAdSets agrupa os vereditos por conjunto, em ordem ascendente de
// adset_id, checando cancelamento antes de cada classificação.
func (s *Service) classifyAdSets(ctx context.Context, series []*domain.AdSeries, verdicts []*domain.AdVerdict) ([]*domain.AdSetVerdict, error) {
	names := make(map[string]string)
	campaigns := make(map[string]string)
	for _, adSeries := range series {
		names[adSeries.AdSetID] = adSeries.AdSetName
		campaigns[adSeries.AdSetID] = adSeries.CampaignID
	}

	byAdSet := make(map[string][]*domain.AdVerdict)
	for _, v := range verdicts {
		byAdSet[v.AdSetID] = append(byAdSet[v.AdSetID], v)
	}

	adSetIDs := make([]string, 0, len(byAdSet))
	for id := range byAdSet {
		adSetIDs = append(adSetIDs, id)
	}
	sort.Strings(adSetIDs)

	adSets := make([]*domain.AdSetVerdict, 0, len(adSetIDs))
	for _, id := range adSetIDs {
		if ctx.Err() != nil {
			return nil, NewCancelled()
		}
		adSets = append(adSets, ClassifyAdSet(id, names[id], campaigns[id], byAdSet[id]))
	}

	return adSets, nil
}

// roundAdSetVerdicts arredonda para duas casas decimais as métricas de
// variação e saturação do documento.
func roundAdSetVerdicts(adSets []*domain.AdSetVerdict) {
	for _, adSet := range adSets {
		adSet.Saturation.DeclineRatio = utils.RoundWithTwoDecimalPlace(adSet.Saturation.DeclineRatio)
		adSet.Saturation.AvgNewReachPct = roundedPtr(adSet.Saturation.AvgNewReachPct)

		for _, ad := range adSet.Ads {
			ad.Trends.CTR.ChangePct = roundedPtr(ad.Trends.CTR.ChangePct)
			ad.Trends.Frequency.ChangePct = roundedPtr(ad.Trends.Frequency.ChangePct)
			ad.Trends.NewReach.ChangePct = roundedPtr(ad.Trends.NewReach.ChangePct)
		}
	}
}

func roundedPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}

	rounded := utils.RoundWithTwoDecimalPlace(*v)
	return &rounded
}

// summarize totaliza os status finais dos anúncios, já após eventual
// promoção por saturação.
func summarize(adSets []*domain.AdSetVerdict) domain.StatusSummary {
	summary := domain.StatusSummary{}
	for _, adSet := range adSets {
		for _, v := range adSet.Ads {
			summary.Total++
			switch v.Status {
			case domain.StatusHealthy:
				summary.Healthy++
			case domain.StatusWarning:
				summary.Warning++
			case domain.StatusFatigued:
				summary.Fatigued++
			case domain.StatusSaturated:
				summary.Saturated++
			}
		}
	}
	return summary
}

// groupCampaigns organiza os conjuntos classificados sob suas campanhas, em
// ordem ascendente de campaign_id.
func groupCampaigns(series []*domain.AdSeries, adSets []*domain.AdSetVerdict) []*domain.CampaignGroup {
	groups := make(map[string]*domain.CampaignGroup)
	for _, adSeries := range series {
		if _, ok := groups[adSeries.CampaignID]; !ok {
			groups[adSeries.CampaignID] = &domain.CampaignGroup{
				CampaignID:      adSeries.CampaignID,
				CampaignName:    adSeries.CampaignName,
				EffectiveStatus: adSeries.CampaignStatus,
			}
		}
	}

	for _, adSet := range adSets {
		if group, ok := groups[adSet.CampaignID]; ok {
			group.AdSets = append(group.AdSets, adSet)
		}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]*domain.CampaignGroup, 0, len(ids))
	for _, id := range ids {
		result = append(result, groups[id])
	}

	return result
}
