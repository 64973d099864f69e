package geometry

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hashFloats combines the bit patterns of vals into one xxhash64 digest.
// Negative zero is folded into zero so that Equal values hash alike.
func hashFloats(vals ...float64) uint64 {
	d := xxhash.New()
	writeFloats(d, vals...)
	return d.Sum64()
}

func writeFloats(d *xxhash.Digest, vals ...float64) {
	var buf [8]byte
	for _, v := range vals {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
}

func writeLen(d *xxhash.Digest, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = d.Write(buf[:])
}
