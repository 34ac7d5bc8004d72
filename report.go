package fieldbench

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrUndefinedRate = errors.New("bitrate undefined")

// Result is the outcome of one benchmark.
type Result struct {
	Label   string
	Elapsed time.Duration
	Bytes   float64
	// Rate is in GB/s. It is only meaningful when Err is nil.
	Rate float64
	Err  error
}

// Seconds converts d without splitting it into whole and fractional parts,
// so that Seconds(2*d) == 2*Seconds(d) exactly.
func Seconds(d time.Duration) float64 {
	return float64(d) / float64(time.Second)
}

// Bitrate returns bytes/elapsed in GB/s. Zero bytes is a zero rate. Work
// done in less than MIN_ELAPSED is ErrUndefinedRate.
func Bitrate(bytes float64, elapsed time.Duration) (float64, error) {
	if bytes == 0 {
		return 0, nil
	}
	if elapsed < MIN_ELAPSED {
		return 0, fmt.Errorf("%w: %g bytes in %v", ErrUndefinedRate, bytes, elapsed)
	}
	rate := bytes / Seconds(elapsed) / GIGABYTE
	if math.IsInf(rate, 0) || math.IsNaN(rate) {
		return 0, fmt.Errorf("%w: %g bytes in %v", ErrUndefinedRate, bytes, elapsed)
	}
	return rate, nil
}

func newResult(label string, p Params, size int, elapsed time.Duration) Result {
	bytes := p.LogicalBytes(size)
	rate, err := Bitrate(bytes, elapsed)
	return Result{
		Label:   label,
		Elapsed: elapsed,
		Bytes:   bytes,
		Rate:    rate,
		Err:     err,
	}
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Bitrate for %s: undefined", r.Label)
	}
	return fmt.Sprintf("Bitrate for %s: %.2f GB/s", r.Label, r.Rate)
}
