package domain

// AdStatus classifica o estado de desgaste de um anúncio ou conjunto.
type AdStatus string

const (
	StatusHealthy   AdStatus = "healthy"
	StatusWarning   AdStatus = "warning"
	StatusFatigued  AdStatus = "fatigued"
	StatusSaturated AdStatus = "saturated"
)

// statusRank define a ordenação saturated > fatigued > warning > healthy.
var statusRank = map[AdStatus]int{
	StatusHealthy:   0,
	StatusWarning:   1,
	StatusFatigued:  2,
	StatusSaturated: 3,
}

// Rank retorna a severidade numérica do status.
func (s AdStatus) Rank() int {
	return statusRank[s]
}

// WorstStatus retorna o status mais severo entre os informados.
func WorstStatus(statuses ...AdStatus) AdStatus {
	worst := StatusHealthy
	for _, s := range statuses {
		if s.Rank() > worst.Rank() {
			worst = s
		}
	}
	return worst
}

// Níveis de confiança da classificação de um conjunto de anúncios.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Direções de tendência entre o primeiro e o último terço da série.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// TrendStat descreve a variação de uma métrica entre o primeiro e o último
// terço da janela analisada. ChangePct é nil quando a média inicial é zero.
type TrendStat struct {
	ChangePct *float64 `json:"change_pct"`
	Direction string   `json:"direction"`
	MeanEarly float64  `json:"mean_early"`
	MeanLate  float64  `json:"mean_late"`
}

// AdTrends agrupa as tendências por métrica.
type AdTrends struct {
	CTR       TrendStat `json:"ctr"`
	Frequency TrendStat `json:"frequency"`
	NewReach  TrendStat `json:"new_reach"`
}

// CorrelationStat carrega o r de Pearson entre frequência e CTR com o
// p-valor bicaudal. R e P são nil quando há menos de 10 pontos pareados ou
// quando a estatística degenera (variância zero).
type CorrelationStat struct {
	R           *float64 `json:"r"`
	P           *float64 `json:"p"`
	Significant bool     `json:"significant"`
	Points      int      `json:"points"`
}

// MetricsWindow resume as médias de uma janela (atual ou baseline).
type MetricsWindow struct {
	CTR         float64  `json:"ctr"`
	Frequency   float64  `json:"frequency"`
	NewReachPct *float64 `json:"new_reach_pct"`
}

// VerdictMetrics compara a janela recente com a janela inicial.
type VerdictMetrics struct {
	Current  MetricsWindow `json:"current"`
	Baseline MetricsWindow `json:"baseline"`
}

// AdVerdict é o diagnóstico individual de um anúncio.
type AdVerdict struct {
	AdID                   string          `json:"ad_id"`
	AdName                 string          `json:"ad_name"`
	AdSetID                string          `json:"adset_id"`
	CampaignID             string          `json:"campaign_id"`
	Status                 AdStatus        `json:"status"`
	Trends                 AdTrends        `json:"trends"`
	Correlation            CorrelationStat `json:"correlation"`
	Metrics                VerdictMetrics  `json:"metrics"`
	InsufficientDataReason *string         `json:"insufficient_data_reason"`
	DaysObserved           int             `json:"days_observed"`
	Daily                  []DerivedDay    `json:"daily"`
}

// SaturationStat expõe os insumos da regra de saturação do conjunto.
type SaturationStat struct {
	DeclineRatio     float64  `json:"decline_ratio"`
	CrossCorrelation *float64 `json:"cross_correlation"`
	AvgNewReachPct   *float64 `json:"avg_new_reach_pct"`
}

// AdSetVerdict agrega os diagnósticos dos anúncios de um conjunto.
type AdSetVerdict struct {
	AdSetID        string         `json:"adset_id"`
	AdSetName      string         `json:"adset_name"`
	CampaignID     string         `json:"campaign_id"`
	Status         AdStatus       `json:"status"`
	Confidence     string         `json:"confidence"`
	Recommendation string         `json:"recommendation"`
	Saturation     SaturationStat `json:"saturation"`
	Ads            []*AdVerdict   `json:"ads"`
}
