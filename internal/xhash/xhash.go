// Package xhash computes a 128-bit structural fingerprint for content-addressed
// caches, namely the diamond store's (edgelist, highest_nodes, join) key.
//
// It is built from two independently salted 64-bit passes of xxhash rather
// than a single cryptographic hash, because xxhash is the only hashing
// library present anywhere in the example corpus this module was grounded
// on. xhash makes accidental collisions astronomically unlikely, not
// cryptographically impossible. diamond.Store keys on the Fingerprint alone
// and runs no structural equality check when two keys match.
package xhash

import "github.com/cespare/xxhash/v2"

// loSalt and hiSalt decorrelate the two passes so Fingerprint's two halves
// are not simply the same hash truncated twice.
const (
	loSalt = uint64(0x9E3779B97F4A7C15)
	hiSalt = uint64(0xC2B2AE3D27D4EB4F)
)

// Fingerprint is a 128-bit structural hash, represented as two uint64 halves.
type Fingerprint struct {
	Lo uint64
	Hi uint64
}

// Sum128 hashes data into a Fingerprint using two salted xxhash passes.
// data should already be a canonical encoding (stable field order, stable
// separators) of the structure being fingerprinted.
func Sum128(data []byte) Fingerprint {
	lo := xxhash.New()
	_, _ = lo.Write(data)
	_, _ = lo.Write(uint64ToBytes(loSalt))

	hi := xxhash.New()
	_, _ = hi.Write(uint64ToBytes(hiSalt))
	_, _ = hi.Write(data)

	return Fingerprint{Lo: lo.Sum64(), Hi: hi.Sum64()}
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
