package analyzing

import (
	"fmt"

	"github.com/google/uuid"
)

// Códigos das condições de saída de uma invocação. São contrato com a API.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeCancelled         = "CANCELLED"
	CodeInternal          = "INTERNAL"
)

// AnalysisError é o erro único retornado por uma invocação: ou o documento
// completo é emitido, ou um AnalysisError.
type AnalysisError struct {
	Code    string // Código da condição de saída
	Message string // Mensagem descritiva, sem dados brutos
	ErrID   string // ID estável para postmortem (apenas INTERNAL)
	Err     error  // Erro subjacente, quando houver
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.ErrID != "" {
		return fmt.Sprintf("%s (error id %s): %s", e.Code, e.ErrID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewInvalidInput cria o erro de precondição de parâmetros.
func NewInvalidInput(message string) *AnalysisError {
	return &AnalysisError{Code: CodeInvalidInput, Message: message}
}

// NewInvalidRange cria o erro de período inválido.
func NewInvalidRange(message string) *AnalysisError {
	return &AnalysisError{Code: CodeInvalidRange, Message: message}
}

// NewSourceUnavailable envolve uma falha de leitura da fonte de dados.
func NewSourceUnavailable(err error) *AnalysisError {
	return &AnalysisError{
		Code:    CodeSourceUnavailable,
		Message: "fonte de dados indisponível",
		Err:     err,
	}
}

// NewCancelled cria o erro de cancelamento cooperativo.
func NewCancelled() *AnalysisError {
	return &AnalysisError{Code: CodeCancelled, Message: "análise cancelada"}
}

// NewInternal envolve uma condição inesperada com um error id estável.
func NewInternal(err error) *AnalysisError {
	return &AnalysisError{
		Code:    CodeInternal,
		Message: "condição inesperada durante a análise",
		ErrID:   uuid.New().String(),
		Err:     err,
	}
}
