package fieldbench

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/consensys/gnark/logger"

	"github.com/eon-protocol/fieldbench/field"
	"github.com/eon-protocol/fieldbench/kernels"
	"github.com/eon-protocol/fieldbench/parallel"
)

// ChainLanes runs chain on every lane and sums the lane outputs.
func ChainLanes[E any, P field.Pointer[E]](lanes []ChainLane[E], rounds int, chain func(t []E, rounds int) E) E {
	outs := parallel.Map(lanes, func(_ int, lane *ChainLane[E]) E {
		return chain(lane.Coeffs, rounds)
	})
	return kernels.Sum[E, P](outs)
}

// ConvolveLanes runs convolve on every lane; out[i] belongs to lanes[i].
func ConvolveLanes[E any](lanes []ConvolutionLane[E], width int, convolve func(a, b []E, width int) E) []E {
	return parallel.Map(lanes, func(_ int, lane *ConvolutionLane[E]) E {
		return convolve(lane.A, lane.B, width)
	})
}

// measure times compute and pins its result. The caller pins the inputs
// before calling, so generation is never inside the window.
func measure[T any](compute func() T) (T, time.Duration) {
	start := time.Now()
	v := Opaque(compute())
	return v, time.Since(start)
}

// ChainLabel names the chain benchmark result for kind.
func ChainLabel(kind field.Kind) string {
	return kind.Name + CHAIN_SUFFIX
}

// BenchChain measures the latency-bound chain kernel for kind. chain must
// compute what kernels.Chain computes; the benchmarks pass the concrete loops
// from package kernels.
func BenchChain[E any, P field.Pointer[E]](kind field.Kind, chain func(t []E, rounds int) E, p Params, progress io.Writer) (Result, error) {
	label := ChainLabel(kind)
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := CheckMemory(p.ChainFootprint(kind.Size)); err != nil {
		return Result{}, fmt.Errorf("%s: %w", label, err)
	}
	defer release()

	lanes := Opaque(GenerateChain[E, P](p, progress))
	_, elapsed := measure(func() E {
		return ChainLanes[E, P](lanes, p.Length, chain)
	})
	res := newResult(label, p, kind.Size, elapsed)
	logResult(res, p)
	return res, nil
}

// BenchConvolution measures the throughput-bound convolution kernel for kind.
func BenchConvolution[E any, P field.Pointer[E]](kind field.Kind, convolve func(a, b []E, width int) E, p Params, progress io.Writer) (Result, error) {
	label := kind.Name
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := CheckMemory(p.ConvolutionFootprint(kind.Size)); err != nil {
		return Result{}, fmt.Errorf("%s: %w", label, err)
	}
	defer release()

	lanes := Opaque(GenerateConvolution[E, P](p, progress))
	_, elapsed := measure(func() []E {
		return ConvolveLanes(lanes, p.Width, convolve)
	})
	res := newResult(label, p, kind.Size, elapsed)
	logResult(res, p)
	return res, nil
}

func logResult(res Result, p Params) {
	log := logger.Logger().With().
		Str("kernel", res.Label).
		Int("lanes", p.Lanes).
		Int("length", p.Length).
		Int("width", p.Width).Logger()
	if res.Err != nil {
		log.Warn().Err(res.Err).Dur("took", res.Elapsed).Msg("benchmark done")
		return
	}
	log.Debug().Dur("took", res.Elapsed).Float64("gbps", res.Rate).Msg("benchmark done")
}

// Run executes the chain benchmark and both convolution benchmarks in that
// order, writing one line per result to out. It stops at the first failure.
func Run(p Params, out, progress io.Writer) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	model, cores := cpuModel()
	log := logger.Logger()
	log.Info().
		Str("cpu", model).
		Int("cores", cores).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Uint64("seed", p.Seed).
		Uint64("footprint", p.ConvolutionFootprint(field.GOLDILOCKS.Size)).
		Msg("starting benchmarks")

	benches := []func() (Result, error){
		func() (Result, error) {
			return BenchChain(field.GOLDILOCKS, kernels.ChainGoldilocks, p, progress)
		},
		func() (Result, error) {
			return BenchConvolution(field.GOLDILOCKS, kernels.ConvolveGoldilocks, p, progress)
		},
		func() (Result, error) {
			return BenchConvolution(field.WORD, kernels.ConvolveWord, p, progress)
		},
	}

	results := make([]Result, 0, len(benches))
	for _, bench := range benches {
		res, err := bench()
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if _, err := fmt.Fprintln(out, res); err != nil {
			return results, fmt.Errorf("write result: %w", err)
		}
		// Hand the previous lanes back before the next benchmark allocates.
		debug.FreeOSMemory()
	}
	return results, nil
}
