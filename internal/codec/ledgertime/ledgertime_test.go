package ledgertime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpochZero(t *testing.T) {
	iso, err := ToISO8601(int64(0))
	require.NoError(t, err)
	require.Equal(t, "2000-01-01T00:00:00.000Z", iso)
}

func TestRoundTrip(t *testing.T) {
	for _, epoch := range []int64{0, 1, 666000000, 745024200, 1234567890} {
		iso, err := ToISO8601(epoch)
		require.NoError(t, err)
		back, err := ToLedgerEpoch(iso)
		require.NoError(t, err)
		require.Equal(t, epoch, back)
	}
}

func TestUnixMillis(t *testing.T) {
	require.Equal(t, int64(946684800000), ToUnixMillis(0))
	require.Equal(t, int64(0), FromUnixMillis(946684800000))
	// sub-second values round to the nearest second
	require.Equal(t, int64(1), FromUnixMillis(946684801499))
	require.Equal(t, int64(2), FromUnixMillis(946684801500))
}

func TestInvalidTypes(t *testing.T) {
	_, err := ToISO8601("not an int")
	require.ErrorIs(t, err, ErrInvalidDateType)

	_, err = ToISO8601(1.5)
	require.ErrorIs(t, err, ErrInvalidDateType)

	_, err = ToLedgerEpoch(42)
	require.ErrorIs(t, err, ErrInvalidDateType)

	_, err = ToLedgerEpoch("garbage")
	require.ErrorIs(t, err, ErrInvalidDateType)
}
