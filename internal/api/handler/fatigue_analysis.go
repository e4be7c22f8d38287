package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creative-fatigue-api/internal/domain"
	"github.com/vfg2006/creative-fatigue-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-fatigue-api/pkg/apiErrors"
	"github.com/vfg2006/creative-fatigue-api/pkg/log"
	"github.com/vfg2006/creative-fatigue-api/pkg/utils"
)

// O documento de saída pode ser grande; jsoniter reduz o custo de encoding
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseAnalysisParams monta os parâmetros da invocação a partir da rota e da
// query string.
func parseAnalysisParams(r *http.Request, defaultRangeDays int) (domain.AnalysisParams, error) {
	storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	rangeDays := defaultRangeDays
	if raw := r.URL.Query().Get("range_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.AnalysisParams{}, errors.New("range_days deve ser um inteiro")
		}
		rangeDays = parsed
	}

	if rangeDays < domain.MinRangeDays || rangeDays > domain.MaxRangeDays {
		return domain.AnalysisParams{}, errors.New("range_days deve estar entre 14 e 365")
	}

	includeInactive := false
	if raw := r.URL.Query().Get("include_inactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.AnalysisParams{}, errors.New("include_inactive deve ser booleano")
		}
		includeInactive = parsed
	}

	// Período explícito tem precedência sobre range_days; sem ele, o período
	// termina ontem (o dia corrente ainda não tem linha consolidada)
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	var startDate, endDate time.Time
	switch {
	case rawStart != "" && rawEnd != "":
		start, err := utils.ParseDate(rawStart)
		if err != nil {
			return domain.AnalysisParams{}, errors.New("start_date deve estar no formato YYYY-MM-DD")
		}
		end, err := utils.ParseDate(rawEnd)
		if err != nil {
			return domain.AnalysisParams{}, errors.New("end_date deve estar no formato YYYY-MM-DD")
		}
		startDate = utils.TruncateToDay(*start)
		endDate = utils.TruncateToDay(*end)

	case rawStart != "" || rawEnd != "":
		return domain.AnalysisParams{}, errors.New("start_date e end_date devem ser informados juntos")

	default:
		endDate = utils.TruncateToDay(time.Now().AddDate(0, 0, -1))
		startDate = endDate.AddDate(0, 0, -(rangeDays - 1))
	}

	return domain.AnalysisParams{
		StoreID:         storeID,
		StartDate:       startDate,
		EndDate:         endDate,
		IncludeInactive: includeInactive,
	}, nil
}

// writeAnalysisError traduz o AnalysisError para o envelope da API.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		var details any
		if analysisErr.ErrID != "" {
			details = map[string]string{"error_id": analysisErr.ErrID}
		}
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Message, details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro interno", nil)
}

// GetFatigueAnalysis executa a análise de fadiga e saturação da loja e
// devolve o documento completo.
func GetFatigueAnalysis(service analyzing.Analyzer, defaultRangeDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseAnalysisParams(r, defaultRangeDays)
		if err != nil {
			logger.WithError(err).Warn("análise: parâmetros de requisição inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"store_id":   params.StoreID,
			"start_date": params.StartDate.Format(time.DateOnly),
			"end_date":   params.EndDate.Format(time.DateOnly),
		}).Info("análise: executando análise de fadiga")

		report, err := service.Analyze(r.Context(), params)
		if err != nil {
			logger.WithError(err).WithField("store_id", params.StoreID).Error("análise: invocação falhou")
			writeAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("análise: falha ao codificar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetCreativeScores devolve apenas a seção de Creative Scores do documento.
func GetCreativeScores(service analyzing.Analyzer, defaultRangeDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseAnalysisParams(r, defaultRangeDays)
		if err != nil {
			logger.WithError(err).Warn("scores: parâmetros de requisição inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.Analyze(r.Context(), params)
		if err != nil {
			logger.WithError(err).WithField("store_id", params.StoreID).Error("scores: invocação falhou")
			writeAnalysisError(w, err)
			return
		}

		response := map[string]any{
			"report_id":      report.ReportID,
			"dateRange":      report.DateRange,
			"creativeScores": report.CreativeScores,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("scores: falha ao codificar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
