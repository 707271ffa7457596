// Package bufhash implements the fast, non-cryptographic buffer hash used
// to compress the rendered-image signal into a short hex token.
//
// The algorithm is the classic 31-multiplier string hash computed over a
// signed 32-bit accumulator: for each byte b, acc = acc*31 + b with 32-bit
// wraparound. The final accumulator is rendered as lowercase hexadecimal of
// the signed value, so results for some inputs start with a minus sign.
//
// The function is deterministic across platforms and calls: the same byte
// sequence always produces the same token. It is intentionally weak; do not
// use it anywhere collision resistance matters — the pipeline's final
// identifier comes from the cryptographic digest in package digest.
package bufhash
