package internal

import "math/rand"

// ShouldSample calculates whether or not to keep an event given the stream's sampling ratio.
// Ratio here means a 1 in X chance of being selected; 0 and 1 both mean always selected.
func ShouldSample(ratio int) bool {
	if ratio <= 1 {
		return true
	}
	return rand.Float64() < 1/float64(ratio) //nolint:gosec // doesn't need cryptographic security
}
