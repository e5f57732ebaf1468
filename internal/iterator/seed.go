package iterator

import (
	"crypto/rand"
	"encoding/binary"
)

// drawSeed sources a 64-bit seed from the platform's nondeterministic
// source. Called exactly once by unseeded constructors.
func drawSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is not something we can recover from
		// meaningfully here; fall back to a fixed but documented seed
		// rather than silently producing a predictable-looking one.
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}
