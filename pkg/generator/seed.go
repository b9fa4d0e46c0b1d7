// seed.go — Deterministic per-theme random streams.
package generator

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns a PCG stream derived from seed and salt. Every theme gets its
// own stream salted with its output file name, so a theme renders the same
// regardless of batch order or parallelism.
func NewRNG(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible output.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+"/a"), seedWord(seed, salt+"/b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
