package address

import (
	"golang.org/x/crypto/sha3"
)

// DigestLength is the size of the digest a Hasher must produce.
const DigestLength = 32

// Hasher computes the 256-bit digest that drives checksum casing.
//
// Implementations must be safe for concurrent use.
type Hasher interface {
	Sum256(data []byte) [DigestLength]byte
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(data []byte) [DigestLength]byte

// Sum256 calls f(data).
func (f HasherFunc) Sum256(data []byte) [DigestLength]byte {
	return f(data)
}

// Keccak256Hasher is the original Keccak-256 used by Ethereum, which differs
// from the standardized SHA3-256 in its padding.
type Keccak256Hasher struct{}

// Sum256 hashes data with a fresh Keccak state, so the zero value can be
// shared between goroutines.
func (Keccak256Hasher) Sum256(data []byte) (digest [DigestLength]byte) {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	h.Sum(digest[:0])
	return digest
}

// Keccak256 returns the legacy Keccak-256 digest of data.
func Keccak256(data []byte) [DigestLength]byte {
	return Keccak256Hasher{}.Sum256(data)
}
