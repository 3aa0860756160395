package hanzime

import "math/bits"

// Murmur3 (x86, 32 bit), with every Unicode scalar value hashed as its own
// 32-bit block. Derived from MurmurHash3.cpp (public domain) by Austin Appleby.

const (
	c1 = 0xcc9e2d51
	c2 = 0x1b873593
)

// Sum32 returns the murmur3 hash of s, using each rune as one block.
func Sum32(s string, seed uint32) uint32 {
	h, _, n := mixBlocks(s, seed, len(s))
	return fmix(h, uint32(n))
}

// SumPrefix hashes the first limit runes of s. It returns the hash and the
// number of bytes of s that have been hashed, i.e. s[:n] is the hashed prefix.
func SumPrefix(s string, seed uint32, limit int) (h uint32, n int) {
	h, _, n = mixBlocks(s, seed, limit)
	return fmix(h, uint32(n)), n
}

// mixBlocks runs the body of murmur3 over at most limit runes of s.
// It returns the intermediate hash, the number of runes mixed and the
// number of bytes they occupy.
func mixBlocks(s string, seed uint32, limit int) (h uint32, runes int, n int) {
	h = seed
	n = len(s)
	for i, r := range s {
		if runes >= limit {
			n = i
			break
		}
		k := uint32(r)
		k *= c1
		k = bits.RotateLeft32(k, 15)
		k *= c2
		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
		runes++
	}
	return h, runes, n
}

// fmix mixes in the length and finalizes with avalanche.
func fmix(h uint32, length uint32) uint32 {
	h ^= length
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
