package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/creative-fatigue-api/internal/domain"
)

// DailyRowSource é a capacidade injetada de leitura das linhas diárias.
// Toda a E/S de uma invocação está concentrada aqui; o restante do pipeline é
// puro e em memória.
type DailyRowSource interface {
	// FetchDailyRows retorna as linhas da loja dentro de [startDate, endDate],
	// em ordem arbitrária.
	FetchDailyRows(ctx context.Context, storeID string, startDate, endDate time.Time, includeInactive bool) ([]domain.DailyRow, error)
}

// CreativeScorer calcula os Creative Scores dos anúncios do período.
type CreativeScorer interface {
	ScoreAds(ctx context.Context, rows []domain.DailyRow, startDate, endDate time.Time) ([]*domain.CreativeScore, error)
}

// Analyzer executa uma invocação completa da análise de fadiga e saturação.
type Analyzer interface {
	// Analyze transforma as linhas diárias do período no documento de
	// resultado. Ou o documento completo é emitido, ou um único AnalysisError.
	Analyze(ctx context.Context, params domain.AnalysisParams) (*domain.AnalysisReport, error)
}
