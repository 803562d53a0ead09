package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do SDK.
// Ela permite que o código externo (Handler, transporte) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "MALFORMED_PAYLOAD")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Erros do Modelo de Entidades ---

// MissingRequiredFieldError indica que um campo exigido pelo agregado nunca foi
// preenchido. É detectado no ponto de uso (validação ou serialização), nunca na criação.
type MissingRequiredFieldError struct {
	Entity string
	Field  string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("Campo obrigatório ausente: %s.%s", e.Entity, e.Field)
}
func (e *MissingRequiredFieldError) Category() string { return "MISSING_REQUIRED_FIELD" }
func (e *MissingRequiredFieldError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *MissingRequiredFieldError) Unwrap() error    { return nil }

// NewMissingRequiredFieldError cria o erro para o campo field da entidade entity.
func NewMissingRequiredFieldError(entity, field string) AppError {
	return &MissingRequiredFieldError{Entity: entity, Field: field}
}

// MalformedPayloadError representa um payload de troca sem uma chave obrigatória
// ou com uma chave de formato incorreto (e.g., "sku" que não é um array).
type MalformedPayloadError struct {
	Key    string // Caminho da chave, e.g. "sku[1].ean"
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("Payload malformado: %s", e.Reason)
	}
	return fmt.Sprintf("Payload malformado: chave %q %s", e.Key, e.Reason)
}
func (e *MalformedPayloadError) Category() string { return "MALFORMED_PAYLOAD" }
func (e *MalformedPayloadError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *MalformedPayloadError) Unwrap() error    { return e.Err }

// NewMissingKeyError cria um MalformedPayloadError para uma chave obrigatória ausente.
func NewMissingKeyError(key string) AppError {
	return &MalformedPayloadError{Key: key, Reason: "é obrigatória e está ausente"}
}

// NewInvalidKeyError cria um MalformedPayloadError para uma chave com formato inválido.
func NewInvalidKeyError(key, expected string, err error) AppError {
	return &MalformedPayloadError{Key: key, Reason: "deveria ser " + expected, Err: err}
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, a categoria e a mensagem.
// Percorre a cadeia de Unwrap, então erros embrulhados com %w continuam tipados.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
