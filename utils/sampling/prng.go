package sampling

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Sampler draws reals uniformly in [min, max).
type Sampler interface {
	Float64(min, max float64) (float64, error)
}

// KeyedPRNG deterministically generates a sequence of random bytes from
// a key using the blake2b XOF, and the reals drawn from them. Two KeyedPRNG
// with the same key produce the same sequence, which makes randomized node
// sets reproducible.
//
// Reads are serialized, but reads from several goroutines interleave in
// scheduling order.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG seeded with key. A nil key is the empty key.
// The key is copied.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {

	prng = &KeyedPRNG{key: append([]byte{}, key...)}

	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key); err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	return
}

// Key returns a copy of the key seeding the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	return append([]byte{}, prng.key...)
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Float64 draws a real in [min, max) from the next 8 bytes of the stream.
func (prng *KeyedPRNG) Float64(min, max float64) (float64, error) {
	return ReadFloat64(prng, min, max)
}

// Reset rewinds the stream to its start.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
