package reservation

import "errors"

// ReservedSeat is the committed reservation passed through to the client.
// The provider owns these values; this service never mutates them.
type ReservedSeat struct {
	TrainNo string
	SeatNo  string // empty on open-seating tickets
	CarNo   string
	DepTime string
	ArrTime string
}

// ErrNoTrains signals that the provider found nothing bookable for the
// requested route, date and time. Distinct from generic provider failure.
var ErrNoTrains = errors.New("no trains available for the requested schedule")

// ErrInvalidPassengerCount rejects non-positive passenger counts before any
// external call is made
var ErrInvalidPassengerCount = errors.New("passenger count must be at least 1")

// ConfigError reports process configuration missing at request time. It is
// raised before any external call and maps to an internal-error response.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return "missing configuration: " + e.Missing
}
