package field

// WordBytes is the encoded width of a Word.
const WordBytes = 8

// Word is a plain uint64 with wrapping arithmetic. It is the baseline the
// field element is compared against.
type Word uint64

func (z *Word) SetZero() *Word {
	*z = 0
	return z
}

func (z *Word) SetOne() *Word {
	*z = 1
	return z
}

func (z *Word) SetUint64(v uint64) *Word {
	*z = Word(v)
	return z
}

// Add sets z = a + b mod 2^64 and returns z.
func (z *Word) Add(a, b *Word) *Word {
	*z = *a + *b
	return z
}

// Mul sets z = a * b mod 2^64 and returns z.
func (z *Word) Mul(a, b *Word) *Word {
	*z = *a * *b
	return z
}

func (z *Word) Uint64() uint64 {
	return uint64(*z)
}
