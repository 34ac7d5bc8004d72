package kernels

import (
	"github.com/eon-protocol/fieldbench/field"
)

// The generic kernels reach Mul and Add through a runtime dictionary, which
// costs an indirect call per operation and hides the arithmetic from the
// inliner. The loops below are what the benchmarks time; they compute the
// same values as Chain and Convolve.

// ChainGoldilocks is Chain over field.Goldilocks.
func ChainGoldilocks(t []field.Goldilocks, rounds int) field.Goldilocks {
	var s field.Goldilocks
	s.SetOne()
	for r := 0; r < rounds; r++ {
		for j := range t {
			s.Square(&s)
			s.Add(&s, &t[j])
		}
	}
	return s
}

// ConvolveGoldilocks is Convolve over field.Goldilocks.
func ConvolveGoldilocks(a, b []field.Goldilocks, width int) field.Goldilocks {
	var sum, term field.Goldilocks
	for k := 0; k < width; k++ {
		bk := b[k : k+len(a)]
		for i := range a {
			term.Mul(&a[i], &bk[i])
			sum.Add(&sum, &term)
		}
	}
	return sum
}

// ChainWord is Chain over field.Word.
func ChainWord(t []field.Word, rounds int) field.Word {
	s := field.Word(1)
	for r := 0; r < rounds; r++ {
		for _, c := range t {
			s = s*s + c
		}
	}
	return s
}

// ConvolveWord is Convolve over field.Word.
func ConvolveWord(a, b []field.Word, width int) field.Word {
	var sum field.Word
	for k := 0; k < width; k++ {
		bk := b[k : k+len(a)]
		for i := range a {
			sum += a[i] * bk[i]
		}
	}
	return sum
}
