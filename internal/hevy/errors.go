package hevy

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth matches any *AuthError: the api key is invalid or forbidden
	// and the user has to reconfigure it.
	ErrAuth = errors.New("hevy authentication failed")
	// ErrApi matches any *ApiError: timeouts, transport failures and
	// non-auth error statuses. These are retried by the regular schedule.
	ErrApi = errors.New("hevy api request failed")
	// ErrDataShape matches any *DataShapeError.
	ErrDataShape = errors.New("unexpected hevy payload")
)

type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("hevy auth error (status %d): %s", e.StatusCode, e.Message)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

type ApiError struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *ApiError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("hevy api %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("hevy api %s: %s: %s", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("hevy api %s: %s", e.Endpoint, e.Message)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func (e *ApiError) Is(target error) bool {
	return target == ErrApi
}

// DataShapeError signals a response body that could not be decoded into
// the expected structure.
type DataShapeError struct {
	Endpoint string
	Err      error
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("hevy api %s: unexpected payload: %s", e.Endpoint, e.Err)
}

func (e *DataShapeError) Unwrap() error {
	return e.Err
}

func (e *DataShapeError) Is(target error) bool {
	return target == ErrDataShape
}

// ErrorKind classifies err for metrics and status reporting.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrDataShape):
		return "data"
	case errors.Is(err, ErrApi):
		return "api"
	default:
		return "other"
	}
}
