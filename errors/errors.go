package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap returns a copy of e carrying err.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: err}
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest       = New(http.StatusBadRequest, "Bad request", nil)
	ErrInvalidInput     = New(http.StatusBadRequest, "Invalid input", nil)
	ErrNotFound         = New(http.StatusNotFound, "Not found", nil)
	ErrTooManyRequests  = New(http.StatusTooManyRequests, "Rate limit exceeded", nil)
	ErrInternalServer   = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrStoreUnavailable = New(http.StatusServiceUnavailable, "Cart store unavailable", nil)
)

// Form error types. Messages are shown verbatim by the pages.
var (
	ErrMissingFields       = New(http.StatusBadRequest, "Veuillez remplir tous les champs", nil)
	ErrInvalidForm         = New(http.StatusBadRequest, "Formulaire invalide", nil)
	ErrInvalidCredentials  = New(http.StatusUnauthorized, "Identifiants invalides", nil)
	ErrInvalidDiscountCode = New(http.StatusBadRequest, "Invalid discount code", nil)
	ErrCartNotArray        = New(http.StatusBadRequest, "cart must be an array", nil)
)

// From converts any error into an *Error, defaulting to a 500.
func From(err error) *Error {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer.Wrap(err)
}

// ErrorMiddleware renders the last error attached with c.Error.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := From(c.Errors.Last().Err)
		c.AbortWithStatusJSON(appErr.Code, appErr)
	}
}
