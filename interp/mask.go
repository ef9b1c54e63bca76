package interp

import (
	"math"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// DefaultMaskDistance is the mask threshold the original application used
// in coordinate units. Callers pass a threshold explicitly; this is only a
// convenient default for them.
const DefaultMaskDistance = 0.05

// MaskExtrapolation returns a copy of the result in which every cell whose
// minimum distance to any sample exceeds maxDistance is replaced by the
// no-estimate sentinel. The input result is not modified. Masking is
// idempotent and monotone in the threshold.
func MaskExtrapolation(
	r *grid.Result, s *sample.Set, maxDistance float64,
) *grid.Result {
	out := r.Clone()
	tree := s.Tree()
	maxSq := maxDistance * maxDistance

	for i, gy := range r.YS {
		for j, gx := range r.XS {
			_, distSq := tree.Nearest(sample.Point{X: gx, Y: gy, Idx: -1})
			if !(distSq < maxSq) {
				out.ZS[i][j] = math.NaN()
			}
		}
	}
	return out
}
