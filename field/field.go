// Package field defines the element kinds the benchmarks run on: the
// Goldilocks prime field from gnark-crypto and a raw 64-bit machine word.
//
// Both kinds expose the same pointer-receiver method set, so a kernel written
// once against Pointer can be instantiated for either of them.
package field

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Goldilocks is an element of GF(2^64 - 2^32 + 1).
type Goldilocks = goldilocks.Element

// Pointer is the capability set a kernel needs from an element kind:
// identities, addition and multiplication, plus a way to load random bits.
type Pointer[E any] interface {
	*E
	SetZero() *E
	SetOne() *E
	SetUint64(v uint64) *E
	Add(a, b *E) *E
	Mul(a, b *E) *E
}

// Kind names an element type and its encoded width in bytes.
type Kind struct {
	Name string
	Size int
}

var GOLDILOCKS = Kind{Name: "Goldilocks", Size: goldilocks.Bytes}
var WORD = Kind{Name: "u64", Size: WordBytes}
