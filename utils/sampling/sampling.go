// Package sampling implements the keyed draw of reals used to place random
// interpolation nodes.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadFloat64 reads 8 bytes from r and maps them to a real in [min, max).
// Only the 53 most significant bits are used, so that every draw in [0, 1)
// is exactly representable before scaling. If min == max, min is returned.
func ReadFloat64(r io.Reader, min, max float64) (float64, error) {

	var bb [8]byte
	if _, err := io.ReadFull(r, bb[:]); err != nil {
		return 0, fmt.Errorf("cannot ReadFloat64: %w", err)
	}

	f := float64(binary.LittleEndian.Uint64(bb[:])>>11) / (1 << 53)

	x := min + f*(max-min)

	// scaling can round up to max
	if x >= max && max > min {
		x = math.Nextafter(max, min)
	}

	return x, nil
}
