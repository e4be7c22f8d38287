package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-fatigue-api/infrastructure/database/postgres"
)

var dailyRowTestColumns = []string{
	"store_id", "ad_id", "ad_name", "adset_id", "adset_name",
	"campaign_id", "campaign_name", "ad_effective_status", "adset_effective_status",
	"campaign_effective_status", "date", "impressions", "reach", "link_clicks",
	"inline_link_clicks", "outbound_clicks", "landing_page_views", "conversions",
	"spend", "frequency",
}

func newRepoWithMock(t *testing.T) (DailyRowRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDailyRowRepository(&postgres.Connection{DB: db}), mock
}

func TestFetchDailyRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(dailyRowTestColumns).
		AddRow("store1", "ad1", "Anúncio 1", "set1", "Conjunto 1",
			"camp1", "Campanha 1", "ACTIVE", "ACTIVE",
			"ACTIVE", date, int64(1000), int64(400), int64(20),
			int64(50), int64(30), int64(40), int64(4),
			10.5, 2.5).
		AddRow("store1", "ad2", nil, "set1", nil,
			"camp1", nil, nil, nil,
			nil, date, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM ad_daily_insights adi").
		WithArgs("store1", "2024-03-01", "2024-03-20", "ACTIVE", "ACTIVE", "ACTIVE").
		WillReturnRows(rows)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	result, err := repo.FetchDailyRows(context.Background(), "store1", start, end, false)
	require.NoError(t, err)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "ad1", first.AdID)
	assert.Equal(t, "Anúncio 1", first.AdName)
	assert.Equal(t, int64(1000), first.Impressions)
	assert.Equal(t, int64(50), first.InlineLinkClicks)
	assert.Equal(t, 10.5, first.Spend)
	assert.Equal(t, 2.5, first.FrequencyRaw)

	// Numéricos NULL viram zero; frequency NULL vira NaN para acionar o
	// fallback impressions/reach no derivador
	second := result[1]
	assert.Equal(t, "ad2", second.AdID)
	assert.Empty(t, second.AdName)
	assert.Zero(t, second.Impressions)
	assert.Zero(t, second.Spend)
	assert.True(t, math.IsNaN(second.FrequencyRaw))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchDailyRows_IncludeInactive(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	// Sem o filtro de status efetivo a query carrega apenas loja e período
	mock.ExpectQuery("SELECT (.+) FROM ad_daily_insights adi").
		WithArgs("store1", "2024-03-01", "2024-03-20").
		WillReturnRows(sqlmock.NewRows(dailyRowTestColumns))

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	result, err := repo.FetchDailyRows(context.Background(), "store1", start, end, true)
	require.NoError(t, err)
	assert.Empty(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOlderThan(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec("DELETE FROM ad_daily_insights").
		WillReturnResult(sqlmock.NewResult(0, 42))

	deleted, err := repo.DeleteOlderThan(context.Background(), 400)
	require.NoError(t, err)
	assert.Equal(t, int64(42), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
