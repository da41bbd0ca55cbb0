package controllers

import (
	"fmt"
	"net"
	"net/http"

	"github.com/pkg/errors"
)

const (
	ErrCodeQuoteExpired      = "QUOTE_EXPIRED"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeInvalidAddress    = "INVALID_ADDRESS"
	ErrCodeAmountTooLow      = "AMOUNT_TOO_LOW"
	ErrCodePairUnavailable   = "PAIR_UNAVAILABLE"
)

// Permanent aggregator codes reclassified for callers.
const (
	ClassRetryFreshQuote = "retry_fresh_quote"
	ClassUserFixable     = "user_fixable"
	ClassFatal           = "fatal"
)

var permanentClasses = map[string]string{
	ErrCodeQuoteExpired:      ClassRetryFreshQuote,
	ErrCodeInsufficientFunds: ClassUserFixable,
	ErrCodeInvalidAddress:    ClassUserFixable,
	ErrCodeAmountTooLow:      ClassUserFixable,
	ErrCodePairUnavailable:   ClassFatal,
}

type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	RetryAfter int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sideshift: status %d code %s: %s", e.HTTPStatus, e.Code, e.Message)
}

func (e *APIError) Transient() bool {
	return e.HTTPStatus == http.StatusTooManyRequests || e.HTTPStatus >= 500
}

func (e *APIError) RateLimited() bool {
	return e.HTTPStatus == http.StatusTooManyRequests
}

func (e *APIError) Class() string {
	if class, ok := permanentClasses[e.Code]; ok {
		return class
	}

	return ClassFatal
}

// IsTransient reports whether err may succeed on retry: a network failure,
// a timeout, a 5xx or a 429.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return false
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
