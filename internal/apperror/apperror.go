// Package apperror defines the typed error kinds surfaced by the domain
// services. The GraphQL layer translates these into response errors with a
// machine-readable code; internal details (driver errors, stack traces)
// never reach the client.
package apperror

import "fmt"

type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindInsufficientStock  Kind = "INSUFFICIENT_STOCK"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindInvalidToken       Kind = "INVALID_TOKEN"
	KindInvalid            Kind = "INVALID_INPUT"
	KindInternal           Kind = "INTERNAL"
)

// Error carries a kind plus a user-facing message. Producto is only set for
// insufficient-stock failures and names the offending product.
type Error struct {
	Kind     Kind
	Message  string
	Producto string
}

func (e *Error) Error() string { return e.Message }

// Extensions satisfies gqlerrors.ExtendedError so the kind travels in the
// GraphQL error extensions.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.Kind)}
	if e.Producto != "" {
		ext["producto"] = e.Producto
	}
	return ext
}

func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }
func AlreadyExists(msg string) *Error { return &Error{Kind: KindAlreadyExists, Message: msg} }
func Unauthorized(msg string) *Error  { return &Error{Kind: KindUnauthorized, Message: msg} }
func Invalid(msg string) *Error       { return &Error{Kind: KindInvalid, Message: msg} }
func Internal(msg string) *Error      { return &Error{Kind: KindInternal, Message: msg} }

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Credenciales invalidas"}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "Token invalido o expirado"}
}

func InsufficientStock(producto string) *Error {
	return &Error{
		Kind:     KindInsufficientStock,
		Message:  fmt.Sprintf("El articulo %s excede la cantidad disponible", producto),
		Producto: producto,
	}
}

// KindOf reports the kind of err, or KindInternal for errors that did not
// originate in this package.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
