package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
)

// ErrProviderUnavailable is returned when no upstream is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// NetworkError captures a failed request or a non-OK upstream status.
type NetworkError struct {
	Sport  sports.Sport
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Sport.APIType(), e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: request failed: %v", e.Sport.APIType(), e.Err)
	}
	return e.Sport.APIType() + ": request failed"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DataShapeError captures a payload that could not be decoded into the expected shape.
type DataShapeError struct {
	Sport sports.Sport
	Field string
	Err   error
}

func (e *DataShapeError) Error() string {
	msg := fmt.Sprintf("%s: unexpected payload", e.Sport.APIType())
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataShapeError) Unwrap() error { return e.Err }

// DateParseError marks a game whose date is not DD.MM.YYYY.
type DateParseError struct {
	GameID string
	Value  string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("game %s: invalid date %q", e.GameID, e.Value)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var target *NetworkError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsDataShapeError attempts to unwrap an error into a DataShapeError.
func AsDataShapeError(err error) (*DataShapeError, bool) {
	var target *DataShapeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsDateParseError attempts to unwrap an error into a DateParseError.
func AsDateParseError(err error) (*DateParseError, bool) {
	var target *DateParseError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Kind classifies err for logs and metrics: network, data_shape, date_parse, canceled or unknown.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	if _, ok := AsNetworkError(err); ok {
		return "network"
	}
	if _, ok := AsDataShapeError(err); ok {
		return "data_shape"
	}
	if _, ok := AsDateParseError(err); ok {
		return "date_parse"
	}
	return "unknown"
}
