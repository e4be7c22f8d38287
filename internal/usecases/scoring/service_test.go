package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-fatigue-api/internal/domain"
)

var (
	scoreStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	scoreEnd   = time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)
)

func evidenceRow(adID string, date time.Time, visits, purchases int64, spend float64) domain.DailyRow {
	return domain.DailyRow{
		AdID:             adID,
		AdName:           "Anúncio " + adID,
		Date:             date,
		LandingPageViews: visits,
		Conversions:      purchases,
		Spend:            spend,
	}
}

func TestScoreAds_RanksAboveAndBelowBaseline(t *testing.T) {
	// adX converte a 5% e adY a 1%; o baseline agregado fica em 3%
	rows := []domain.DailyRow{
		evidenceRow("adX", scoreStart, 1000, 50, 100),
		evidenceRow("adY", scoreStart, 1000, 10, 100),
	}

	scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	x, y := scores[0], scores[1]
	assert.Equal(t, "adX", x.AdID)
	assert.Equal(t, "adY", y.AdID)

	assert.InDelta(t, 0.03, x.BaselineCVR, 1e-9)

	require.NotNil(t, x.Score)
	require.NotNil(t, y.Score)
	assert.Greater(t, *x.Score, *y.Score)
	assert.Greater(t, *x.Score, 50.0)
	assert.Less(t, *y.Score, 20.0)

	assert.Equal(t, domain.ScoreLabelConfident, x.Label)
	assert.Equal(t, domain.ScoreLabelConfident, y.Label)
}

func TestScoreAds_NoVisits(t *testing.T) {
	rows := []domain.DailyRow{
		{AdID: "ad1", Date: scoreStart, Impressions: 5000, Spend: 50},
	}

	scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)
	require.Len(t, scores, 1)

	// Sem visitas não há evidência: score nulo, nunca zero
	assert.Nil(t, scores[0].Score)
	assert.Equal(t, domain.ScoreLabelProvisional, scores[0].Label)
}

func TestScoreAds_ProvisionalLabel(t *testing.T) {
	tests := []struct {
		name          string
		visits        int64
		spend         float64
		expectedLabel string
	}{
		{"Poucas visitas", 150, 100, domain.ScoreLabelProvisional},
		{"Pouco investimento", 500, 10, domain.ScoreLabelProvisional},
		{"Evidência madura", 500, 100, domain.ScoreLabelConfident},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []domain.DailyRow{evidenceRow("ad1", scoreStart, tt.visits, tt.visits/20, tt.spend)}

			scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
			require.NoError(t, err)
			require.Len(t, scores, 1)
			assert.Equal(t, tt.expectedLabel, scores[0].Label)
		})
	}
}

func TestScoreAds_VisitPrecedence(t *testing.T) {
	t.Run("Landing page views tem precedência", func(t *testing.T) {
		rows := []domain.DailyRow{{
			AdID:             "ad1",
			Date:             scoreStart,
			LandingPageViews: 300,
			OutboundClicks:   500,
			InlineLinkClicks: 700,
		}}

		scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(300), scores[0].Visits)
	})

	t.Run("Outbound clicks quando não há landing page views", func(t *testing.T) {
		rows := []domain.DailyRow{{
			AdID:             "ad1",
			Date:             scoreStart,
			OutboundClicks:   500,
			InlineLinkClicks: 700,
		}}

		scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(500), scores[0].Visits)
	})

	t.Run("Inline link clicks como último recurso", func(t *testing.T) {
		rows := []domain.DailyRow{{
			AdID:             "ad1",
			Date:             scoreStart,
			InlineLinkClicks: 700,
		}}

		scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(700), scores[0].Visits)
	})
}

func TestScoreAds_PurchasesClampedToVisits(t *testing.T) {
	rows := []domain.DailyRow{evidenceRow("ad1", scoreStart, 100, 250, 50)}

	scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(100), scores[0].Purchases)
}

func TestScoreAds_RowsOutsideRangeIgnored(t *testing.T) {
	rows := []domain.DailyRow{
		evidenceRow("ad1", scoreStart.AddDate(0, 0, -1), 1000, 100, 100),
		evidenceRow("ad1", scoreStart, 200, 10, 30),
		evidenceRow("ad1", scoreEnd.AddDate(0, 0, 1), 1000, 100, 100),
	}

	scores, err := NewService().ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(200), scores[0].Visits)
	assert.Equal(t, int64(10), scores[0].Purchases)
}

func TestScoreAds_Deterministic(t *testing.T) {
	rows := []domain.DailyRow{
		evidenceRow("ad1", scoreStart, 800, 30, 60),
		evidenceRow("ad2", scoreStart, 600, 25, 45),
		evidenceRow("ad3", scoreStart, 400, 5, 30),
	}

	service := NewService()

	first, err := service.ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)
	second, err := service.ScoreAds(context.Background(), rows, scoreStart, scoreEnd)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].AdID, second[i].AdID)
		require.NotNil(t, first[i].Score)
		require.NotNil(t, second[i].Score)
		assert.Equal(t, *first[i].Score, *second[i].Score)
	}
}

func TestScoreAds_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []domain.DailyRow{evidenceRow("ad1", scoreStart, 100, 5, 10)}

	_, err := NewService().ScoreAds(ctx, rows, scoreStart, scoreEnd)
	assert.ErrorIs(t, err, context.Canceled)
}
