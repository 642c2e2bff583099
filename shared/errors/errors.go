package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NewNotFound builds the 404-mapped error the store returns for ids that
// do not resolve. Stale references surface as an ordinary error response
// instead of a silent no-op.
func NewNotFound(what string, id string) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf("%s %q not found", what, id), StatusCode: http.StatusNotFound}
}

func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
