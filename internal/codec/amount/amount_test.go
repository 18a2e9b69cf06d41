package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		drops   bool
		want    string
		wantErr error
	}{
		{name: "plain integer", in: "42", want: "42"},
		{name: "fractional", in: "85.5321", want: "85.5321"},
		{name: "signed", in: "-3.5", want: "-3.5"},
		{name: "explicit plus", in: "+7", want: "7"},
		{name: "exponent", in: "1e3", want: "1000"},
		{name: "normalizes trailing zeros", in: "1.00", want: "1"},
		{name: "whole drops", in: "1000000", drops: true, want: "1000000"},
		{name: "numeric input", in: float64(12), want: "12"},
		{name: "int input", in: int(7), want: "7"},
		{name: "int64 input", in: int64(-9), want: "-9"},
		{name: "uint64 input", in: uint64(100000012), drops: true, want: "100000012"},
		{name: "uint64 above int64 range", in: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "bare dot", in: ".", wantErr: ErrInvalidAmount},
		{name: "double dot", in: "12.34.56", wantErr: ErrInvalidAmount},
		{name: "leading dot", in: ".5", wantErr: ErrInvalidAmount},
		{name: "empty", in: "", wantErr: ErrInvalidAmount},
		{name: "not a number", in: "abc", wantErr: ErrInvalidAmount},
		{name: "fractional drops", in: "1.5", drops: true, wantErr: ErrTooManyDecimalPlaces},
		{name: "unsupported type", in: struct{}{}, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.drops)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, Format(got))
		})
	}
}

func TestDropsToNative(t *testing.T) {
	d, err := Parse("1000000", true)
	require.NoError(t, err)
	require.Equal(t, "1", Format(DropsToNative(d)))

	d, err = Parse("15001020", true)
	require.NoError(t, err)
	require.Equal(t, "15.00102", Format(DropsToNative(d)))
}

func TestNativeToDropsRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "12", "1000000", "85532100", "99999999999"} {
		drops, err := Parse(s, true)
		require.NoError(t, err)
		require.Equal(t, s, Format(NativeToDrops(DropsToNative(drops))))
	}
}

func TestNativeToDropsRounding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0000005", "1"},  // tie rounds toward +inf
		{"0.0000004", "0"},  // below half rounds down
		{"-0.0000005", "0"}, // negative tie still rounds toward +inf
		{"1.0000014", "1000001"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		require.Equal(t, tt.want, Format(NativeToDrops(d)), "input %s", tt.in)
	}
}

func TestWithTransferRate(t *testing.T) {
	v := decimal.RequireFromString("100")
	rate := decimal.RequireFromString("0.2")
	require.Equal(t, "100.2", Format(WithTransferRate(v, rate)))

	rate = decimal.RequireFromString("2")
	require.Equal(t, "102", Format(WithTransferRate(v, rate)))
}

func TestFormatDerived(t *testing.T) {
	d := decimal.RequireFromString("1.234567891234")
	require.Equal(t, "1.23456789", FormatDerived(d))

	d = decimal.RequireFromString("15.001020000")
	require.Equal(t, "15.00102", FormatDerived(d))
}
