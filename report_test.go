package fieldbench

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBitrate(t *testing.T) {
	rate, err := Bitrate(4e9, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, 2.0, rate)
}

func TestBitrateHalvesWhenElapsedDoubles(t *testing.T) {
	p := Params{Lanes: 32, Length: 1 << 24, Width: 4}
	bytes := p.LogicalBytes(8)
	for _, d := range []time.Duration{
		MIN_ELAPSED, 7 * time.Microsecond, 333 * time.Millisecond, 1600 * time.Millisecond,
		time.Second + 123456789, 17 * time.Minute,
	} {
		once, err := Bitrate(bytes, d)
		require.NoError(t, err)
		twice, err := Bitrate(bytes, 2*d)
		require.NoError(t, err)
		require.Equal(t, once/2, twice, "elapsed %v", d)
	}
}

func TestBitrateZeroBytes(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second, time.Millisecond} {
		rate, err := Bitrate(0, d)
		require.NoError(t, err)
		require.Zero(t, rate)
	}
}

func TestBitrateUndefined(t *testing.T) {
	for _, d := range []time.Duration{0, -1, time.Nanosecond, MIN_ELAPSED - 1} {
		_, err := Bitrate(1, d)
		require.ErrorIs(t, err, ErrUndefinedRate, "elapsed %v", d)
	}
	_, err := Bitrate(math.Inf(1), time.Second)
	require.ErrorIs(t, err, ErrUndefinedRate)
	_, err = Bitrate(math.NaN(), time.Second)
	require.ErrorIs(t, err, ErrUndefinedRate)
}

func TestBitrateResolvableWindow(t *testing.T) {
	rate, err := Bitrate(1e3, MIN_ELAPSED)
	require.NoError(t, err)
	require.InDelta(t, 1.0, rate, 1e-12)
}

func TestNearZeroElapsedIsUndefined(t *testing.T) {
	res := newResult("u64", DefaultParams(), 8, time.Nanosecond)
	require.ErrorIs(t, res.Err, ErrUndefinedRate)
	require.Equal(t, "Bitrate for u64: undefined", res.String())
}

func TestResultString(t *testing.T) {
	// 2 * 1 * 1 * 1000 * 8 bytes in 4us.
	p := Params{Lanes: 1, Length: 1000, Width: 1}
	res := newResult("u64", p, 8, 4*time.Microsecond)
	require.NoError(t, res.Err)
	require.Equal(t, "Bitrate for u64: 4.00 GB/s", res.String())

	res = newResult("Goldilocks", p, 8, 0)
	require.ErrorIs(t, res.Err, ErrUndefinedRate)
	require.Equal(t, "Bitrate for Goldilocks: undefined", res.String())

	p.Length = 0
	res = newResult("Goldilocks", p, 8, 0)
	require.NoError(t, res.Err)
	require.Equal(t, "Bitrate for Goldilocks: 0.00 GB/s", res.String())
}
