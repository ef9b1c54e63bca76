package sample

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Point is a sample location paired with its index into the originating Set.
// It satisfies kdtree.Comparable so Sets can be spatially indexed.
type Point struct {
	X, Y float64
	Idx  int
}

func (p Point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(Point)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	default:
		panic("illegal dimension")
	}
}

func (p Point) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between two points.
func (p Point) Distance(c kdtree.Comparable) float64 {
	q := c.(Point)
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Points is a collection of Point that satisfies kdtree.Interface.
type Points []Point

func (p Points) Index(i int) kdtree.Comparable         { return p[i] }
func (p Points) Len() int                              { return len(p) }
func (p Points) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p Points) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(
		pointPlane{Points: p, Dim: d},
		kdtree.MedianOfRandoms(pointPlane{Points: p, Dim: d}, 100),
	)
}

// pointPlane implements sort.Interface and kdtree.SortSlicer for Points.
type pointPlane struct {
	Points
	kdtree.Dim
}

func (p pointPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.Points[i].X < p.Points[j].X
	case 1:
		return p.Points[i].Y < p.Points[j].Y
	default:
		panic("illegal dimension")
	}
}

func (p pointPlane) Slice(start, end int) kdtree.SortSlicer {
	return pointPlane{Points: p.Points[start:end], Dim: p.Dim}
}

func (p pointPlane) Swap(i, j int) {
	p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
}

// Points returns the Set's coordinates as an indexable point collection.
func (s *Set) Points() Points {
	pts := make(Points, s.Len())
	for i := range pts {
		pts[i] = Point{X: s.X[i], Y: s.Y[i], Idx: i}
	}
	return pts
}

// Tree builds a kd-tree over the Set's coordinates.
func (s *Set) Tree() *kdtree.Tree {
	return kdtree.New(s.Points(), false)
}
