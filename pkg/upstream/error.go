// Package upstream describes failures of the portal backend in a form every
// layer can inspect without importing the HTTP client.
package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindValidation is a payload that failed its schema, before sending or
	// after receiving.
	KindValidation Kind = "validation"
	KindHTTP       Kind = "http"
	KindNetwork    Kind = "network"
)

const (
	MsgUnauthorized = "Não autorizado."
	MsgForbidden    = "Acesso negado."
	MsgRequest      = "Erro na requisição."
	MsgNetwork      = "Falha de rede/CORS (não foi possível acessar a API)."
	MsgBadResponse  = "Resposta inválida da API."
)

// APIError is the single normalized shape of a failed backend call.
type APIError struct {
	Status   int
	Message  string
	Messages []string
	Body     []byte
	Kind     Kind
	Err      error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s %d: %s", e.Kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports a 401 from the backend: the session is gone.
func IsUnauthorized(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindHTTP && apiErr.Status == http.StatusUnauthorized
}

// StatusOf is the backend status carried by err, or 0.
func StatusOf(err error) int {
	if apiErr, ok := As(err); ok {
		return apiErr.Status
	}
	return 0
}

// DefaultMessage is used when a non-2xx answer carries no message.
func DefaultMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return MsgUnauthorized
	case http.StatusForbidden:
		return MsgForbidden
	default:
		return MsgRequest
	}
}
