package domain

// Rótulos de maturidade da evidência de um Creative Score.
const (
	ScoreLabelProvisional = "PROVISIONAL"
	ScoreLabelConfident   = "CONFIDENT"
)

// CreativeScore é a probabilidade bayesiana, ponderada por volume de
// evidência, de o anúncio converter acima do baseline da conta.
// Score é nil se e somente se o anúncio não teve visitas no período.
type CreativeScore struct {
	AdID        string   `json:"ad_id"`
	AdName      string   `json:"ad_name"`
	Visits      int64    `json:"visits"`
	Purchases   int64    `json:"purchases"`
	BaselineCVR float64  `json:"baseline_cvr"`
	Confidence  float64  `json:"confidence"`
	Score       *float64 `json:"score"`
	Label       string   `json:"label"`
}
