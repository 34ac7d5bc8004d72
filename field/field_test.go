package field

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestWordWraps(t *testing.T) {
	var a, b, z Word
	a.SetUint64(math.MaxUint64)
	b.SetOne()
	z.Add(&a, &b)
	require.Equal(t, uint64(0), z.Uint64())

	a.SetUint64(1 << 63)
	b.SetUint64(2)
	z.Mul(&a, &b)
	require.Equal(t, uint64(0), z.Uint64())
}

func TestWordIdentities(t *testing.T) {
	var zero, one, x, z Word
	zero.SetZero()
	one.SetOne()
	x.SetUint64(0xdeadbeef)

	z.Add(&x, &zero)
	require.Equal(t, x, z)
	z.Mul(&x, &one)
	require.Equal(t, x, z)
}

func TestGoldilocksReducesOnLoad(t *testing.T) {
	// p = 2^64 - 2^32 + 1, so 2^64 - 1 = p + 2^32 - 2.
	var x Goldilocks
	x.SetUint64(math.MaxUint64)
	require.Equal(t, uint64(1<<32-2), x.Bits()[0])

	var one, z Goldilocks
	one.SetOne()
	z.Mul(&x, &one)
	require.True(t, z.Equal(&x))
}

func TestKindSizes(t *testing.T) {
	var g Goldilocks
	var w Word
	require.Equal(t, int(unsafe.Sizeof(g)), GOLDILOCKS.Size)
	require.Equal(t, int(unsafe.Sizeof(w)), WORD.Size)
}
