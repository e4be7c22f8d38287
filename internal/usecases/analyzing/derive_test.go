package analyzing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-fatigue-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveDay(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.DailyRow
		validate func(t *testing.T, d domain.DerivedDay)
	}{
		{
			name: "Linha completa deriva todas as métricas",
			row: domain.DailyRow{
				Date:             day(2024, 3, 1),
				Impressions:      1000,
				Reach:            400,
				InlineLinkClicks: 50,
				LandingPageViews: 40,
				Conversions:      4,
				FrequencyRaw:     2.5,
			},
			validate: func(t *testing.T, d domain.DerivedDay) {
				assert.Equal(t, "2024-03-01", d.Date)
				assert.Equal(t, 5.0, d.CTR)
				require.NotNil(t, d.CVR)
				assert.Equal(t, 10.0, *d.CVR)
				assert.Equal(t, 2.5, d.Frequency)
				require.NotNil(t, d.NewReachPct)
				assert.Equal(t, 40.0, *d.NewReachPct)
			},
		},
		{
			name: "Zero impressões: CTR zero e new reach indefinido",
			row: domain.DailyRow{
				Date:       day(2024, 3, 1),
				LinkClicks: 10,
			},
			validate: func(t *testing.T, d domain.DerivedDay) {
				assert.Equal(t, 0.0, d.CTR)
				assert.Nil(t, d.NewReachPct)
			},
		},
		{
			name: "Zero landing page views: CVR indefinido, nunca zero",
			row: domain.DailyRow{
				Date:        day(2024, 3, 1),
				Impressions: 500,
				Conversions: 3,
			},
			validate: func(t *testing.T, d domain.DerivedDay) {
				assert.Nil(t, d.CVR)
			},
		},
		{
			name: "Frequency ausente recai em impressions/reach",
			row: domain.DailyRow{
				Date:         day(2024, 3, 1),
				Impressions:  900,
				Reach:        300,
				FrequencyRaw: math.NaN(),
			},
			validate: func(t *testing.T, d domain.DerivedDay) {
				assert.Equal(t, 3.0, d.Frequency)
			},
		},
		{
			name: "Frequency ausente e reach zero: frequência zero",
			row: domain.DailyRow{
				Date:         day(2024, 3, 1),
				Impressions:  900,
				FrequencyRaw: math.NaN(),
			},
			validate: func(t *testing.T, d domain.DerivedDay) {
				assert.Equal(t, 0.0, d.Frequency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DeriveDay(tt.row))
		})
	}
}

func TestDeriveDay_LinkClickPrecedence(t *testing.T) {
	base := domain.DailyRow{Date: day(2024, 3, 1), Impressions: 1000}

	t.Run("Inline link clicks tem precedência", func(t *testing.T) {
		row := base
		row.InlineLinkClicks = 50
		row.OutboundClicks = 30
		row.LinkClicks = 20
		assert.Equal(t, 5.0, DeriveDay(row).CTR)
	})

	t.Run("Outbound clicks quando inline é zero", func(t *testing.T) {
		row := base
		row.OutboundClicks = 30
		row.LinkClicks = 20
		assert.Equal(t, 3.0, DeriveDay(row).CTR)
	})

	t.Run("Link clicks genérico como último recurso", func(t *testing.T) {
		row := base
		row.LinkClicks = 20
		assert.Equal(t, 2.0, DeriveDay(row).CTR)
	})
}

func TestBuildSeries(t *testing.T) {
	start := day(2024, 3, 1)
	end := day(2024, 3, 5)

	makeRow := func(adID string, date time.Time, impressions int64) domain.DailyRow {
		return domain.DailyRow{
			AdID:        adID,
			AdName:      "Anúncio " + adID,
			AdSetID:     "set1",
			CampaignID:  "camp1",
			Date:        date,
			Impressions: impressions,
			LinkClicks:  impressions / 100,
			Reach:       impressions / 2,
		}
	}

	t.Run("Zero-fill preenche lacunas até o fim do período", func(t *testing.T) {
		rows := []domain.DailyRow{
			makeRow("ad1", day(2024, 3, 1), 1000),
			makeRow("ad1", day(2024, 3, 4), 1000),
		}

		series := BuildSeries(rows, start, end)
		require.Len(t, series, 1)
		require.Len(t, series[0].Days, 5)

		dates := make([]string, 0, 5)
		for _, d := range series[0].Days {
			dates = append(dates, d.Date)
		}
		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}, dates)

		// Dias preenchidos mantêm a semântica de zero seguro
		filled := series[0].Days[1]
		assert.Equal(t, 0.0, filled.CTR)
		assert.Equal(t, 0.0, filled.Frequency)
		assert.Nil(t, filled.CVR)
		assert.Nil(t, filled.NewReachPct)
		assert.Zero(t, filled.Impressions)
	})

	t.Run("Datas anteriores à primeira observação não são preenchidas", func(t *testing.T) {
		rows := []domain.DailyRow{makeRow("ad1", day(2024, 3, 3), 1000)}

		series := BuildSeries(rows, start, end)
		require.Len(t, series, 1)
		require.Len(t, series[0].Days, 3)
		assert.Equal(t, "2024-03-03", series[0].Days[0].Date)
	})

	t.Run("Linhas fora do período são descartadas", func(t *testing.T) {
		rows := []domain.DailyRow{
			makeRow("ad1", day(2024, 2, 28), 1000),
			makeRow("ad1", day(2024, 3, 2), 1000),
			makeRow("ad1", day(2024, 3, 6), 1000),
		}

		series := BuildSeries(rows, start, end)
		require.Len(t, series, 1)
		require.Len(t, series[0].Days, 4)
		assert.Equal(t, "2024-03-02", series[0].Days[0].Date)
		assert.Equal(t, "2024-03-05", series[0].Days[len(series[0].Days)-1].Date)
	})

	t.Run("Séries saem em ordem ascendente de ad_id", func(t *testing.T) {
		rows := []domain.DailyRow{
			makeRow("ad3", day(2024, 3, 1), 1000),
			makeRow("ad1", day(2024, 3, 1), 1000),
			makeRow("ad2", day(2024, 3, 1), 1000),
		}

		series := BuildSeries(rows, start, end)
		require.Len(t, series, 3)
		assert.Equal(t, "ad1", series[0].AdID)
		assert.Equal(t, "ad2", series[1].AdID)
		assert.Equal(t, "ad3", series[2].AdID)
	})
}

func TestMarkInsufficient(t *testing.T) {
	start := day(2024, 3, 1)

	makeRows := func(adID string, days int, impressionsPerDay int64) []domain.DailyRow {
		rows := make([]domain.DailyRow, 0, days)
		for i := 0; i < days; i++ {
			rows = append(rows, domain.DailyRow{
				AdID:        adID,
				Date:        start.AddDate(0, 0, i),
				Impressions: impressionsPerDay,
			})
		}
		return rows
	}

	t.Run("Menos de 14 dias marca a série", func(t *testing.T) {
		end := start.AddDate(0, 0, 4)
		series := BuildSeries(makeRows("ad1", 5, 1000), start, end)
		require.Len(t, series, 1)
		assert.NotNil(t, series[0].InsufficientDataReason)
	})

	t.Run("Menos de 1000 impressões acumuladas marca a série", func(t *testing.T) {
		end := start.AddDate(0, 0, 13)
		series := BuildSeries(makeRows("ad1", 14, 50), start, end)
		require.Len(t, series, 1)
		assert.NotNil(t, series[0].InsufficientDataReason)
	})

	t.Run("Série com 14 dias e 1000 impressões passa no gate", func(t *testing.T) {
		end := start.AddDate(0, 0, 13)
		series := BuildSeries(makeRows("ad1", 14, 100), start, end)
		require.Len(t, series, 1)
		assert.Nil(t, series[0].InsufficientDataReason)
	})
}
