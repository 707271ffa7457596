// Package canonical builds the single delimited string the fingerprint is
// digested from.
//
// Joining is pure and stateless: the same ordered values always produce the
// same canonical string. Values are joined with a single '-' and are not
// escaped — a delimiter character inside a value is left as-is. The string
// is only ever hashed, never parsed back, so the ambiguity is harmless for
// its purpose; anything that needs to reverse-parse signals must not reuse
// this format.
package canonical

import "strings"

// Delimiter separates signal values in the canonical string.
const Delimiter = "-"

// Sentinel is the literal substituted for any signal that could not be
// obtained.
const Sentinel = "N/A"

// Join concatenates the ordered signal values into the canonical string,
// with no leading or trailing delimiter.
func Join(values []string) string {
	return strings.Join(values, Delimiter)
}
