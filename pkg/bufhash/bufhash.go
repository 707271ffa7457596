package bufhash

import "strconv"

// Sum reduces an arbitrary byte sequence to a short lowercase hex token
// using a 31-multiplier rolling hash over a signed 32-bit accumulator.
// It is fast and collision-prone; its only job is to compress a rendered
// image buffer into a compact signal component, never to provide any
// security property.
//
// The accumulator wraps at 32 bits and is interpreted as signed, so the
// result may carry a leading minus sign. An empty input yields "0".
func Sum(data []byte) string {
	var acc int32
	for _, b := range data {
		acc = (acc << 5) - acc + int32(b)
	}
	return strconv.FormatInt(int64(acc), 16)
}
