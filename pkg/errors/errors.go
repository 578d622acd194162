package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de erro comuns
var (
	ErrNotFound       = errors.New("recurso não encontrado")
	ErrBadRequest     = errors.New("requisição inválida")
	ErrConflict       = errors.New("recurso já existe")
	ErrInternalServer = errors.New("erro interno do servidor")
)

// APIError representa um erro da API no formato do corpo de resposta
// {message, error, statusCode}
type APIError struct {
	Message     string `json:"message"`
	ErrorText   string `json:"error"`
	StatusCode  int    `json:"statusCode"`
	OriginalErr error  `json:"-"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is e errors.As
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// New cria um novo APIError
func New(statusCode int, message string, err error) *APIError {
	return &APIError{
		Message:     message,
		ErrorText:   http.StatusText(statusCode),
		StatusCode:  statusCode,
		OriginalErr: err,
	}
}

// NotFound cria um erro 404
func NotFound(resource string, err error) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf("%s not found", resource), err)
}

// Conflict cria um erro 400 para violações de unicidade.
// O contrato da API devolve conflitos como 400 Bad Request.
func Conflict(message string, err error) *APIError {
	if err == nil {
		err = ErrConflict
	}
	return New(http.StatusBadRequest, message, err)
}

// BadRequest cria um erro 400
func BadRequest(message string, err error) *APIError {
	return New(http.StatusBadRequest, message, err)
}

// InternalServer cria um erro 500
func InternalServer(message string, err error) *APIError {
	if message == "" {
		message = "Erro interno do servidor"
	}
	return New(http.StatusInternalServerError, message, err)
}

// AsAPIError extrai um *APIError de uma cadeia de erros; quando o erro não
// carrega um APIError, devolve um 500 genérico
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return InternalServer("", err)
}
