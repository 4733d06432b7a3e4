package hash

import (
	"github.com/samber/lo"
)

const (
	// NumBuckets is the size of the range Sum maps into
	NumBuckets = 256
	multiplier = 17
)

// Sum returns the HASH of s: starting from zero, every byte of s is added to
// the accumulator which is then multiplied by 17 and reduced modulo 256.
// It works on raw bytes, not runes.
func Sum(s string) uint8 {
	var acc uint16
	for i := 0; i < len(s); i++ {
		acc = ((acc + uint16(s[i])) * multiplier) % NumBuckets
	}
	return uint8(acc)
}

// Checksum adds up the Sum of every token exactly as given
func Checksum(tokens []string) uint64 {
	return lo.Reduce(tokens, func(agg uint64, token string, _ int) uint64 {
		return agg + uint64(Sum(token))
	}, 0)
}
