// Package digest derives the final fingerprint from the canonical string.
//
// The canonical string is hashed with SHA-256 over its UTF-8 bytes and
// rendered as a 64-character lowercase hexadecimal string. Swapping the
// algorithm would change every fingerprint but not the contract: the
// pipeline only requires a standard, collision-resistant one-way hash with
// a fixed 256-bit output.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// HexLen is the length of every value returned by Hex.
const HexLen = sha256.Size * 2

// Hex returns the SHA-256 digest of s as lowercase hexadecimal.
func Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
