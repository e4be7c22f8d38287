package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API. Os códigos de análise são contrato com o
// dashboard e espelham as condições de saída da invocação.
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido ou expirado
	ErrInsufficientPrivilege = "AUTH_002" // Role sem permissão para a rota

	// Erros de validação (2000-2999)
	ErrInvalidRequest = "VAL_001" // Requisição malformada

	// Condições de saída da análise
	ErrInvalidInput       = "INVALID_INPUT"      // Parâmetros fora das precondições
	ErrInvalidRange       = "INVALID_RANGE"      // Período invertido ou acima de 365 dias
	ErrSourceUnavailable  = "SOURCE_UNAVAILABLE" // Fonte de dados inacessível
	ErrAnalysisCancelled  = "CANCELLED"          // Cancelamento cooperativo
	ErrAnalysisInternal   = "INTERNAL"           // Condição inesperada, com error id estável
	ErrInternalServer     = "SRV_001"            // Erro interno fora da análise
	ErrDatabaseOperation  = "SRV_002"            // Erro de operação de banco de dados
	ErrSchedulerOperation = "SRV_003"            // Erro ao disparar job agendado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrInvalidInput:          http.StatusBadRequest,
	ErrInvalidRange:          http.StatusBadRequest,
	ErrSourceUnavailable:     http.StatusServiceUnavailable,
	ErrAnalysisCancelled:     499, // client closed request
	ErrAnalysisInternal:      http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrSchedulerOperation:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
