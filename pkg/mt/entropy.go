package mt

import "time"

var processStart = time.Now()

// EntropySource supplies a seed when the caller doesn't provide one.
type EntropySource interface {
	Seed() uint32
}

// EntropyFunc adapts a plain function to an EntropySource.
type EntropyFunc func() uint32

func (f EntropyFunc) Seed() uint32 {
	return f()
}

// ClockEntropy seeds from the monotonic clock, in nanoseconds elapsed since the process started.
// Output derived from this source is not reproducible.
var ClockEntropy EntropySource = EntropyFunc(func() uint32 {
	return uint32(time.Since(processStart).Nanoseconds())
})
