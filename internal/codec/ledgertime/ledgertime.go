// Package ledgertime converts between the ledger epoch (seconds since
// January 1, 2000 00:00:00 UTC) and wall-clock time.
package ledgertime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// EpochOffset is the number of seconds between the ledger epoch reference
// instant and the Unix epoch (0x386D4380).
const EpochOffset int64 = 946684800

// ErrInvalidDateType is returned when a conversion is handed a value of
// the wrong kind.
var ErrInvalidDateType = errors.New("invalid date type")

const isoLayout = "2006-01-02T15:04:05.000Z"

// ToUnixMillis converts a ledger epoch value to Unix milliseconds.
func ToUnixMillis(ledgerEpoch int64) int64 {
	return (ledgerEpoch + EpochOffset) * 1000
}

// FromUnixMillis converts Unix milliseconds to a ledger epoch value.
func FromUnixMillis(ms int64) int64 {
	return int64(math.Round(float64(ms)/1000)) - EpochOffset
}

// ToISO8601 renders a ledger epoch value as an ISO-8601 UTC timestamp.
// Fails when handed anything but an integer value.
func ToISO8601(v any) (string, error) {
	epoch, ok := asInt64(v)
	if !ok {
		return "", fmt.Errorf("%w: expected integer, got %T", ErrInvalidDateType, v)
	}
	return time.UnixMilli(ToUnixMillis(epoch)).UTC().Format(isoLayout), nil
}

// ToLedgerEpoch parses an ISO-8601 timestamp into a ledger epoch value.
// Fails when handed anything but a string.
func ToLedgerEpoch(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: expected string, got %T", ErrInvalidDateType, v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateType, s)
	}
	return FromUnixMillis(t.UnixMilli()), nil
}

// asInt64 accepts the integer shapes a JSON decode can produce.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}
