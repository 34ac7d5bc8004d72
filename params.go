package fieldbench

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrInvalidParams = errors.New("invalid benchmark parameters")

// Params fixes the shape of one benchmark: Lanes independent lanes, each
// running Length rounds (chain) or holding Length-element buffers
// (convolution), with Width coefficients or kernel taps.
type Params struct {
	Lanes  int
	Length int
	Width  int
	// Seed drives every lane's generator; lane i uses the stream (Seed, i).
	Seed uint64
}

func DefaultParams() Params {
	return Params{
		Lanes:  BENCH_LANES,
		Length: BENCH_LENGTH,
		Width:  BENCH_WIDTH,
		Seed:   rand.Uint64(),
	}
}

// Validate accepts Length == 0; the reported rate is then zero.
func (p Params) Validate() error {
	if p.Lanes < 1 {
		return fmt.Errorf("%w: lanes=%d", ErrInvalidParams, p.Lanes)
	}
	if p.Width < 1 {
		return fmt.Errorf("%w: width=%d", ErrInvalidParams, p.Width)
	}
	if p.Length < 0 {
		return fmt.Errorf("%w: length=%d", ErrInvalidParams, p.Length)
	}
	return nil
}

// LogicalBytes is the byte count the bitrate is computed from:
// 2 * Width * Lanes * Length * size. It is a relative figure, applied the same
// way to all three kernels.
func (p Params) LogicalBytes(size int) float64 {
	return 2 * float64(p.Width) * float64(p.Lanes) * float64(p.Length) * float64(size)
}

// ChainFootprint is the input memory of the chain benchmark.
func (p Params) ChainFootprint(size int) uint64 {
	return uint64(p.Lanes) * uint64(p.Width) * uint64(size)
}

// ConvolutionFootprint is the input memory of one convolution benchmark:
// a (Length) and b (Length+Width) per lane.
func (p Params) ConvolutionFootprint(size int) uint64 {
	return uint64(p.Lanes) * uint64(2*p.Length+p.Width) * uint64(size)
}
