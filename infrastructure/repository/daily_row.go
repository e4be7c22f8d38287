package repository

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creative-fatigue-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-fatigue-api/internal/domain"
)

const (
	adDailyInsightsTable = "ad_daily_insights adi"

	dailyRowColumns = `adi.store_id, adi.ad_id, adi.ad_name, adi.adset_id, adi.adset_name,
		adi.campaign_id, adi.campaign_name, adi.ad_effective_status, adi.adset_effective_status,
		adi.campaign_effective_status, adi.date, adi.impressions, adi.reach, adi.link_clicks,
		adi.inline_link_clicks, adi.outbound_clicks, adi.landing_page_views, adi.conversions,
		adi.spend, adi.frequency`
)

// DailyRowRepository fornece as linhas diárias por anúncio persistidas pela
// sincronização com a plataforma, e a limpeza de linhas antigas.
type DailyRowRepository interface {
	FetchDailyRows(ctx context.Context, storeID string, startDate, endDate time.Time, includeInactive bool) ([]domain.DailyRow, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type dailyRowRepository struct {
	conn postgres.Conn
}

func NewDailyRowRepository(conn postgres.Conn) DailyRowRepository {
	return &dailyRowRepository{
		conn: conn,
	}
}

// FetchDailyRows retorna as linhas da loja dentro de [startDate, endDate].
// Quando includeInactive é falso, linhas de anúncios cujo status efetivo não é
// ACTIVE nem (campanha ACTIVE ∧ conjunto ACTIVE) são excluídas na origem.
func (r *dailyRowRepository) FetchDailyRows(
	ctx context.Context,
	storeID string,
	startDate, endDate time.Time,
	includeInactive bool,
) ([]domain.DailyRow, error) {
	builder := squirrel.
		Select(dailyRowColumns).
		From(adDailyInsightsTable).
		Where(squirrel.Eq{"adi.store_id": storeID}).
		Where(squirrel.GtOrEq{"adi.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"adi.date": endDate.Format(time.DateOnly)}).
		OrderBy("adi.ad_id ASC, adi.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !includeInactive {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"adi.ad_effective_status": domain.EffectiveStatusActive},
			squirrel.And{
				squirrel.Eq{"adi.campaign_effective_status": domain.EffectiveStatusActive},
				squirrel.Eq{"adi.adset_effective_status": domain.EffectiveStatusActive},
			},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de linhas diárias")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de linhas diárias")
	}
	defer rows.Close()

	dailyRows := make([]domain.DailyRow, 0)
	for rows.Next() {
		row, err := r.scanDailyRow(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha diária")
		}
		dailyRows = append(dailyRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas diárias")
	}

	return dailyRows, nil
}

// DeleteOlderThan remove linhas mais antigas que o horizonte de retenção.
func (r *dailyRowRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("ad_daily_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de retenção")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, errors.Wrapf(err, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return 0, errors.Wrap(err, "erro ao executar a query de retenção")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected, nil
}

// scanDailyRow converte uma linha do banco em DailyRow. Numéricos NULL viram
// zero; frequency NULL vira NaN para acionar o fallback impressions/reach no
// derivador.
func (r *dailyRowRepository) scanDailyRow(rows *sql.Rows) (domain.DailyRow, error) {
	var (
		row              domain.DailyRow
		adName           sql.NullString
		adSetName        sql.NullString
		campaignName     sql.NullString
		adStatus         sql.NullString
		adSetStatus      sql.NullString
		campaignStatus   sql.NullString
		impressions      sql.NullInt64
		reach            sql.NullInt64
		linkClicks       sql.NullInt64
		inlineLinkClicks sql.NullInt64
		outboundClicks   sql.NullInt64
		landingPageViews sql.NullInt64
		conversions      sql.NullInt64
		spend            sql.NullFloat64
		frequency        sql.NullFloat64
	)

	err := rows.Scan(
		&row.StoreID,
		&row.AdID,
		&adName,
		&row.AdSetID,
		&adSetName,
		&row.CampaignID,
		&campaignName,
		&adStatus,
		&adSetStatus,
		&campaignStatus,
		&row.Date,
		&impressions,
		&reach,
		&linkClicks,
		&inlineLinkClicks,
		&outboundClicks,
		&landingPageViews,
		&conversions,
		&spend,
		&frequency,
	)
	if err != nil {
		return domain.DailyRow{}, err
	}

	row.AdName = adName.String
	row.AdSetName = adSetName.String
	row.CampaignName = campaignName.String
	row.AdEffectiveStatus = adStatus.String
	row.AdSetEffectiveStatus = adSetStatus.String
	row.CampaignEffectiveStatus = campaignStatus.String
	row.Impressions = impressions.Int64
	row.Reach = reach.Int64
	row.LinkClicks = linkClicks.Int64
	row.InlineLinkClicks = inlineLinkClicks.Int64
	row.OutboundClicks = outboundClicks.Int64
	row.LandingPageViews = landingPageViews.Int64
	row.Conversions = conversions.Int64
	row.Spend = spend.Float64

	if frequency.Valid {
		row.FrequencyRaw = frequency.Float64
	} else {
		row.FrequencyRaw = math.NaN()
	}

	return row, nil
}
