package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed, or with a fresh random
// seed when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Reader.Read(b[:]); err != nil {
			seed = time.Now().UTC().UnixNano()
		} else {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		}
	}
	return rand.New(rand.NewSource(seed))
}
