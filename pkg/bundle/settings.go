package bundle

import (
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	DefaultIterations   uint64 = 1 << 15
	DefaultRelBlockSize uint8  = 8
	DefaultCpuCost      uint8  = 1
	KeySize             uint8  = 256 / 8
	magic               uint16 = 0x7ab1
	formatVersion       uint8  = 1
	minIterations              = 1
	MaxIterations       uint64 = 1 << 20
	MaxRelBlockSize     uint8  = 16
	MaxCpuCost          uint8  = 16
)

// header is written before the encrypted payload.
type header struct {
	magic             uint16
	version           uint8
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	keySize           uint8
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.version),
		bin.Int(&h.iterations),
		bin.Byte(&h.relativeBlockSize),
		bin.Byte(&h.cpuCost),
		bin.Byte(&h.keySize),
	)
}

// Opt customizes the key derivation settings used by Pack.
type Opt = func(h *header) error

// SetIterations allows the caller to customize the scrypt iteration count.
// Lower counts make packing and unpacking faster, and the password easier to brute force.
func SetIterations(iterations uint64) Opt {
	return func(h *header) error {
		if iterations <= minIterations {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		if iterations > MaxIterations {
			return fmt.Errorf("iterations cannot exceed %d", MaxIterations)
		}
		h.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the scrypt parallelism factor from the default of 1.
func SetCPUCost(cost uint8) Opt {
	return func(h *header) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		if cost > MaxCpuCost {
			return fmt.Errorf("cpu cost cannot exceed %d", MaxCpuCost)
		}
		h.cpuCost = cost
		return nil
	}
}

// validate bounds the key settings read from a bundle before any key is derived from them.
func (h *header) validate() error {
	switch {
	case h.keySize != KeySize:
		return fmt.Errorf("unexpected key size %d", h.keySize)
	case h.cpuCost < DefaultCpuCost || h.cpuCost > MaxCpuCost:
		return fmt.Errorf("cpu cost %d out of range", h.cpuCost)
	case h.relativeBlockSize == 0 || h.relativeBlockSize > MaxRelBlockSize:
		return fmt.Errorf("relative block size %d out of range", h.relativeBlockSize)
	case h.iterations <= minIterations || h.iterations > MaxIterations:
		return fmt.Errorf("iterations %d out of range", h.iterations)
	case h.iterations&(h.iterations-1) != 0:
		return fmt.Errorf("iterations %d is not a power of 2", h.iterations)
	}
	return nil
}

func newHeader(opts ...Opt) (*header, error) {
	h := &header{
		magic:             magic,
		version:           formatVersion,
		iterations:        DefaultIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		keySize:           KeySize,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}
