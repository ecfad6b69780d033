package httperr

import "errors"

// Kind classifies a BusinessError. Transport code maps kinds to status codes;
// everything else only needs the kind to decide how to react.
type Kind string

const (
	KindAuth               Kind = "auth"
	KindForbidden          Kind = "forbidden"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindConflict           Kind = "conflict"
	KindNotFound           Kind = "not_found"
	KindValidation         Kind = "validation"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func newError(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrAuth(code, message string) error {
	return newError(KindAuth, code, message)
}

func ErrForbidden(code, message string) error {
	return newError(KindForbidden, code, message)
}

func ErrInvalidCredentials(code, message string) error {
	return newError(KindInvalidCredentials, code, message)
}

func ErrConflict(code, message string) error {
	return newError(KindConflict, code, message)
}

func ErrNotFound(code, message string) error {
	return newError(KindNotFound, code, message)
}

func ErrValidation(code, message string) error {
	return newError(KindValidation, code, message)
}

// KindOf returns the kind of the first BusinessError in err's chain.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
