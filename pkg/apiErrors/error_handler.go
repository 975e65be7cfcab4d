package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

// Códigos de erro da API
const (
	// Erros de configuração (0-999)
	ErrConfiguration = "CFG_001" // Configuração ausente ou inválida

	// Erros da fonte de anúncios (1000-1999)
	ErrSourceUnavailable = "SRC_001" // Fonte externa indisponível após retries
	ErrMalformedSource   = "SRC_002" // Resposta da fonte em formato inesperado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de negócio (3000-3999)
	ErrBrandNotFound = "BRD_001" // Marca não encontrada

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrConfiguration:       http.StatusUnprocessableEntity,
	ErrSourceUnavailable:   http.StatusBadGateway,
	ErrMalformedSource:     http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrBrandNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// Mapeamento dos erros-sentinela do domínio para códigos de API
var domainCodeMap = []struct {
	sentinel error
	code     string
}{
	{domain.ErrConfiguration, ErrConfiguration},
	{domain.ErrSourceUnavailable, ErrSourceUnavailable},
	{domain.ErrMalformedSourceData, ErrMalformedSource},
	{domain.ErrBrandNotFound, ErrBrandNotFound},
	{domain.ErrPersistence, ErrDatabaseOperation},
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
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

// WriteDomainError resolve o código de API pelo erro-sentinela embrulhado e
// escreve a resposta. Erros fora da taxonomia viram erro interno genérico.
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, CodeForError(err), err.Error(), nil)
}

// CodeForError resolve o código de API de um erro do domínio
func CodeForError(err error) string {
	for _, mapping := range domainCodeMap {
		if errors.Is(err, mapping.sentinel) {
			return mapping.code
		}
	}
	return ErrInternalServer
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
