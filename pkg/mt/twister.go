package mt

import (
	"errors"
	"fmt"
	"math"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Twister is an MT19937 generator.
type Twister struct {
	state  [n]uint32
	cursor int
}

// New creates a Twister initialized with the given seed.
// A zero seed is used as-is.
func New(seed uint32) *Twister {
	t := new(Twister)
	t.Init(seed)
	return t
}

// NewWithEntropy creates a Twister with the given seed, reading one from src instead if seed is 0.
// If src is nil, then ClockEntropy is used.
func NewWithEntropy(seed uint32, src EntropySource) *Twister {
	if seed == 0 {
		if src == nil {
			src = ClockEntropy
		}
		seed = src.Seed()
	}
	return New(seed)
}

// Init resets the generator state from seed.
// The next draw will regenerate the state table.
func (t *Twister) Init(seed uint32) {
	t.state[0] = seed
	for i := 1; i < n; i++ {
		prev := t.state[i-1]
		t.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	t.cursor = n
}

func (t *Twister) twist() {
	var (
		y  uint32
		kk int
	)
	for kk = 0; kk < n-m; kk++ {
		y = (t.state[kk] & upperMask) | (t.state[kk+1] & lowerMask)
		t.state[kk] = t.state[kk+m] ^ (y >> 1) ^ ((y & 1) * matrixA)
	}
	for ; kk < n-1; kk++ {
		y = (t.state[kk] & upperMask) | (t.state[kk+1] & lowerMask)
		t.state[kk] = t.state[kk+(m-n)] ^ (y >> 1) ^ ((y & 1) * matrixA)
	}
	y = (t.state[n-1] & upperMask) | (t.state[0] & lowerMask)
	t.state[n-1] = t.state[m-1] ^ (y >> 1) ^ ((y & 1) * matrixA)
	t.cursor = 0
}

// Uint32 returns the next tempered 32-bit word.
func (t *Twister) Uint32() uint32 {
	if t.cursor >= n {
		t.twist()
	}
	y := t.state[t.cursor]
	t.cursor++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Bytes returns length bytes, each taken from the low 8 bits of one word.
func (t *Twister) Bytes(length int) []byte {
	buf := make([]byte, length)
	_, _ = t.Read(buf)
	return buf
}

// Read fills p the same way as Bytes. It never returns an error.
func (t *Twister) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(t.Uint32() & 0xff)
	}
	return len(p), nil
}

// Real1 returns a number in the closed interval [0,1].
func (t *Twister) Real1() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967295.0)
}

// Real2 returns a number in the half-open interval [0,1).
func (t *Twister) Real2() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967296.0)
}

// Real3 returns a number in the open interval (0,1).
func (t *Twister) Real3() float64 {
	return (float64(t.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Res53 returns a number in [0,1) with 53-bit resolution, consuming two words.
func (t *Twister) Res53() float64 {
	a := t.Uint32() >> 5
	b := t.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Float64 returns Real1 if includeOne is true, Real2 otherwise.
func (t *Twister) Float64(includeOne bool) float64 {
	if includeOne {
		return t.Real1()
	}
	return t.Real2()
}

func (t *Twister) Float64Positive() float64 {
	return t.Real3()
}

// Float32 is Float64 narrowed to float32.
// Narrowing may round a value just below 1 up to 1.
func (t *Twister) Float32(includeOne bool) float32 {
	return float32(t.Float64(includeOne))
}

func (t *Twister) Float32Positive() float32 {
	return float32(t.Real3())
}

// Int returns a value in [0, math.MaxInt32].
func (t *Twister) Int() int32 {
	v, _ := t.IntRange(0, math.MaxInt32)
	return v
}

// IntRange returns a value in the inclusive range [min, max].
//
// The full non-negative range is scaled from Real1, every other range is reduced by modulo from the low 31 bits of a word.
// Modulo reduction is slightly biased for ranges that aren't a power of 2.
func (t *Twister) IntRange(min, max int32) (int32, error) {
	if min == max {
		return min, nil
	}
	if min > max {
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidArgument, min, max)
	}
	if min == 0 && max == math.MaxInt32 {
		return int32(t.Real1() * 2147483647), nil
	}
	rng := int64(max) - int64(min) + 1
	if rng <= 0 {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidArgument, min, max)
	}
	v := int64(t.Uint32() & 0x7fffffff)
	return int32(v%rng + int64(min)), nil
}
