/*package sample holds scattered point measurements: parallel coordinate and
value sequences fed to the interpolation engine.
*/
package sample

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Set is an immutable triple of equal-length sequences: x and y are planar
// coordinates (longitude- and latitude-like), z the measured value at each
// location. Sets must not be modified after construction.
type Set struct {
	X, Y, Z []float64
}

// New creates a Set from three equal-length slices. The slices are not
// copied; the caller must not modify them afterwards.
func New(x, y, z []float64) *Set {
	if len(x) != len(y) || len(x) != len(z) {
		panic(fmt.Sprintf(
			"Slices given to New() have len(x) = %d, len(y) = %d, len(z) = %d.",
			len(x), len(y), len(z),
		))
	}
	return &Set{X: x, Y: y, Z: z}
}

// Len returns the number of points in the Set.
func (s *Set) Len() int { return len(s.X) }

// Clean returns a new Set with every index removed where any of x, y, or z
// is NaN or infinite. The receiver is left untouched.
func (s *Set) Clean() *Set {
	n := 0
	for i := range s.X {
		if usable(s.X[i], s.Y[i], s.Z[i]) {
			n++
		}
	}
	if n == s.Len() {
		return s
	}

	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	z := make([]float64, 0, n)
	for i := range s.X {
		if usable(s.X[i], s.Y[i], s.Z[i]) {
			x = append(x, s.X[i])
			y = append(y, s.Y[i])
			z = append(z, s.Z[i])
		}
	}
	return &Set{X: x, Y: y, Z: z}
}

func usable(x, y, z float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0) &&
		!math.IsNaN(z) && !math.IsInf(z, 0)
}

// Bounds returns the raw bounding box of the Set's coordinates. It panics on
// an empty Set.
func (s *Set) Bounds() (minX, minY, maxX, maxY float64) {
	if s.Len() == 0 {
		panic("Bounds() called on empty Set.")
	}
	minX, maxX = s.X[0], s.X[0]
	minY, maxY = s.Y[0], s.Y[0]
	for i := 1; i < s.Len(); i++ {
		minX = math.Min(minX, s.X[i])
		maxX = math.Max(maxX, s.X[i])
		minY = math.Min(minY, s.Y[i])
		maxY = math.Max(maxY, s.Y[i])
	}
	return minX, minY, maxX, maxY
}

// Signature returns a content hash of the Set, suitable as a memoization key
// component. Two Sets with the same points in the same order share a
// signature.
func (s *Set) Signature() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	binary.LittleEndian.PutUint64(buf, uint64(s.Len()))
	h.Write(buf)
	for _, seq := range [][]float64{s.X, s.Y, s.Z} {
		for _, v := range seq {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			h.Write(buf)
		}
	}
	return h.Sum64()
}
