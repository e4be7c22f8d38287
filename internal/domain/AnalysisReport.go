package domain

import (
	"time"
)

// Limites do período de análise aceitos pela invocação.
const (
	MinRangeDays = 14
	MaxRangeDays = 365
)

// AnalysisParams são os parâmetros de uma invocação da análise.
type AnalysisParams struct {
	StoreID         string
	StartDate       time.Time
	EndDate         time.Time
	IncludeInactive bool
}

// RangeDays retorna o tamanho do período em dias de calendário, inclusivo.
func (p AnalysisParams) RangeDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// DateRange delimita o período coberto pelo relatório.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatusSummary totaliza os anúncios analisados por status final.
type StatusSummary struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Warning   int `json:"warning"`
	Fatigued  int `json:"fatigued"`
	Saturated int `json:"saturated"`
}

// CampaignGroup agrupa os conjuntos de anúncios de uma campanha no relatório.
type CampaignGroup struct {
	CampaignID      string          `json:"campaign_id"`
	CampaignName    string          `json:"campaign_name"`
	EffectiveStatus string          `json:"effective_status"`
	AdSets          []*AdSetVerdict `json:"adSets"`
}

// AnalysisReport é o documento único de saída de uma invocação. Os nomes e
// unidades dos campos são contrato com as interfaces que o consomem.
type AnalysisReport struct {
	ReportID       string           `json:"report_id"`
	GeneratedAt    string           `json:"generatedAt"`
	DateRange      DateRange        `json:"dateRange"`
	Summary        StatusSummary    `json:"summary"`
	Campaigns      []*CampaignGroup `json:"campaigns"`
	AdSets         []*AdSetVerdict  `json:"adSets"`
	CreativeScores []*CreativeScore `json:"creativeScores"`
}
