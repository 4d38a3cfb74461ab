// Package errx provides registry-based application errors that carry a
// stable code, a classification type and an HTTP status, so handlers can
// translate them into API responses without switch statements per domain.
package errx

import (
	"fmt"
	"sync"
)

// Type classifies an error for transport-level mapping and logging.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
	TypeInternal      Type = "INTERNAL"
)

// Code identifies a registered error definition within a registry.
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions for one domain, namespaced by prefix.
type Registry struct {
	prefix string

	mu   sync.RWMutex
	defs map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with the given namespace.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code for later use.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[full] = definition{
		code:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error instance from a registered code.
func (r *Registry) New(code Code) *Error {
	return r.build(code, nil)
}

// NewWithCause creates an error instance wrapping an underlying cause.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.build(code, cause)
}

func (r *Registry) build(code Code, cause error) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()

	if !ok {
		def = definition{
			code:       code,
			errType:    TypeInternal,
			httpStatus: 500,
			message:    "Unknown error",
		}
	}

	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
		cause:      cause,
	}
}

// Error is a rich application error with structured details.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a single key/value detail and returns the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a detail map into the error and returns it.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsType reports whether the error has the given classification.
func (e *Error) IsType(t Type) bool { return e.Type == t }

// ToHTTPResponse renders the error as a JSON-serializable body.
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}
