package domain

// DerivedDay é um dia da série temporal de um anúncio com as métricas de
// razão já derivadas dos contadores brutos.
//
// CVR e NewReachPct são ponteiros: nil significa "não definido" (denominador
// zero), nunca zero. CTR e Frequency são sempre números concretos.
type DerivedDay struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	CTR         float64  `json:"ctr"`
	CVR         *float64 `json:"cvr"`
	Frequency   float64  `json:"frequency"`
	NewReachPct *float64 `json:"new_reach_pct"`
	Impressions int64    `json:"impressions"`
	Conversions int64    `json:"conversions"`
}

// AdSeries é a série diária densa de um anúncio dentro do período analisado.
// Após o zero-fill as datas são únicas, ascendentes e sem lacunas entre a
// primeira observação e o fim do período; caso contrário a série é marcada
// com InsufficientDataReason.
type AdSeries struct {
	AdID                   string       `json:"ad_id"`
	AdName                 string       `json:"ad_name"`
	AdSetID                string       `json:"adset_id"`
	AdSetName              string       `json:"adset_name"`
	CampaignID             string       `json:"campaign_id"`
	CampaignName           string       `json:"campaign_name"`
	CampaignStatus         string       `json:"campaign_effective_status"`
	Days                   []DerivedDay `json:"days"`
	InsufficientDataReason *string      `json:"insufficient_data_reason"`
}

// TotalImpressions soma as impressões de todos os dias da série.
func (s *AdSeries) TotalImpressions() int64 {
	var total int64
	for _, d := range s.Days {
		total += d.Impressions
	}
	return total
}
