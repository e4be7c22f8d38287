package domain

import (
	"time"
)

// Status efetivos reportados pela plataforma de anúncios
const (
	EffectiveStatusActive = "ACTIVE"
)

// DailyRow representa uma linha diária de desempenho por anúncio, como
// armazenada no banco após a sincronização com a plataforma.
//
// Campos numéricos ausentes na origem são normalizados para zero pelo loader;
// a única exceção é FrequencyRaw, que vira NaN quando ausente para que o
// derivador aplique o fallback impressions/reach.
type DailyRow struct {
	StoreID      string    `json:"store_id"`
	AdID         string    `json:"ad_id"`
	AdName       string    `json:"ad_name"`
	AdSetID      string    `json:"adset_id"`
	AdSetName    string    `json:"adset_name"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Date         time.Time `json:"date"`

	AdEffectiveStatus       string `json:"ad_effective_status"`
	AdSetEffectiveStatus    string `json:"adset_effective_status"`
	CampaignEffectiveStatus string `json:"campaign_effective_status"`

	Impressions      int64   `json:"impressions"`
	Reach            int64   `json:"reach"`
	LinkClicks       int64   `json:"link_clicks"`
	InlineLinkClicks int64   `json:"inline_link_clicks"`
	OutboundClicks   int64   `json:"outbound_clicks"`
	LandingPageViews int64   `json:"landing_page_views"`
	Conversions      int64   `json:"conversions"`
	Spend            float64 `json:"spend"`
	FrequencyRaw     float64 `json:"frequency_raw"`
}

// LinkClicksEffective aplica a precedência de cliques observada na origem:
// inline_link_clicks > outbound_clicks > link_clicks.
func (r *DailyRow) LinkClicksEffective() int64 {
	if r.InlineLinkClicks > 0 {
		return r.InlineLinkClicks
	}
	if r.OutboundClicks > 0 {
		return r.OutboundClicks
	}
	return r.LinkClicks
}
