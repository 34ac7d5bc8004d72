package fieldbench

import (
	"io"
	"math/rand/v2"

	"github.com/schollz/progressbar/v3"

	"github.com/eon-protocol/fieldbench/field"
	"github.com/eon-protocol/fieldbench/parallel"
)

// ChainLane holds one lane's chain coefficients.
type ChainLane[E any] struct {
	Coeffs []E
}

// ConvolutionLane holds one lane's operands: len(A) == Length and
// len(B) == Length+Width.
type ConvolutionLane[E any] struct {
	A []E
	B []E
}

func laneRand(p Params, lane int) *rand.Rand {
	return rand.New(rand.NewPCG(p.Seed, uint64(lane)))
}

func randomElements[E any, P field.Pointer[E]](rng *rand.Rand, n int) []E {
	buf := make([]E, n)
	for i := range buf {
		P(&buf[i]).SetUint64(rng.Uint64())
	}
	return buf
}

func newProgress(n int, desc string, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// GenerateChain builds p.Lanes lanes of p.Width random coefficients.
func GenerateChain[E any, P field.Pointer[E]](p Params, progress io.Writer) []ChainLane[E] {
	bar := newProgress(p.Lanes, "Generating chain lanes", progress)
	lanes := parallel.Generate(p.Lanes, func(i int) ChainLane[E] {
		lane := ChainLane[E]{Coeffs: randomElements[E, P](laneRand(p, i), p.Width)}
		_ = bar.Add(1)
		return lane
	})
	_ = bar.Finish()
	return lanes
}

// GenerateConvolution builds p.Lanes lanes of random convolution operands.
func GenerateConvolution[E any, P field.Pointer[E]](p Params, progress io.Writer) []ConvolutionLane[E] {
	bar := newProgress(p.Lanes, "Generating convolution lanes", progress)
	lanes := parallel.Generate(p.Lanes, func(i int) ConvolutionLane[E] {
		rng := laneRand(p, i)
		lane := ConvolutionLane[E]{
			A: randomElements[E, P](rng, p.Length),
			B: randomElements[E, P](rng, p.Length+p.Width),
		}
		_ = bar.Add(1)
		return lane
	})
	_ = bar.Finish()
	return lanes
}
