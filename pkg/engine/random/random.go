// Package random turns a seed string into a reproducible pseudo random source.
package random

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"
)

// SeedValue hashes a seed string to the integer seed fed to the generator.
// The hash is stable across processes and platforms.
func SeedValue(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// New returns a generator seeded from seed. The same seed always yields the
// same sequence.
func New(seed string) *rand.Rand {
	return rand.New(rand.NewSource(SeedValue(seed)))
}

// TimeSeed returns a seed string derived from the current time, used when a
// caller asks for a random seed.
func TimeSeed() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
