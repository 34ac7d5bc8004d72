// Package kernels holds the per-lane compute patterns being measured.
//
// Chain is latency bound: every step depends on the one before it.
// Convolve is throughput bound: its terms are independent of each other.
// Both are generic over the element kind so the field element and the raw
// word run exactly the same code.
package kernels

import (
	"github.com/eon-protocol/fieldbench/field"
)

// Chain starts from one and applies s = s*s + t[j] for every coefficient,
// rounds times over.
func Chain[E any, P field.Pointer[E]](t []E, rounds int) E {
	var s E
	P(&s).SetOne()
	for r := 0; r < rounds; r++ {
		for j := range t {
			P(&s).Mul(&s, &s)
			P(&s).Add(&s, &t[j])
		}
	}
	return s
}

// Convolve returns sum_{k<width} sum_{i<len(a)} a[i]*b[i+k].
// b must hold at least len(a)+width-1 elements.
func Convolve[E any, P field.Pointer[E]](a, b []E, width int) E {
	var sum, term E
	P(&sum).SetZero()
	for k := 0; k < width; k++ {
		bk := b[k : k+len(a)]
		for i := range a {
			P(&term).Mul(&a[i], &bk[i])
			P(&sum).Add(&sum, &term)
		}
	}
	return sum
}

// Sum adds up xs. The order does not matter for the kinds in package field.
func Sum[E any, P field.Pointer[E]](xs []E) E {
	var sum E
	P(&sum).SetZero()
	for i := range xs {
		P(&sum).Add(&sum, &xs[i])
	}
	return sum
}
