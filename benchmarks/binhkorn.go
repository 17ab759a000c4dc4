package benchmarks

import (
	"math"

	"github.com/paretolab/moea/framework"
)

// BinhKorn is a constrained two-variable benchmark; both constraints must hold
// for a candidate to be feasible, which exercises the feasibility-filtered
// sampling and offspring paths.
type BinhKorn struct{}

func NewBinhKorn() *BinhKorn {
	return &BinhKorn{}
}

func (p *BinhKorn) Name() string {
	return "BinhKorn"
}

func (p *BinhKorn) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *BinhKorn) Directions() []framework.Direction {
	return []framework.Direction{framework.Min, framework.Min}
}

func (p *BinhKorn) f1(x []float64) float64 {
	return 4*x[0]*x[0] + 4*x[1]*x[1]
}

func (p *BinhKorn) f2(x []float64) float64 {
	return (x[0]-5)*(x[0]-5) + (x[1]-5)*(x[1]-5)
}

func (p *BinhKorn) Constraints() []framework.Constraint {
	return []framework.Constraint{
		func(x []float64) bool {
			return (x[0]-5)*(x[0]-5)+x[1]*x[1] <= 25
		},
		func(x []float64) bool {
			return (x[0]-8)*(x[0]-8)+(x[1]+3)*(x[1]+3) >= 7.7
		},
	}
}

func (p *BinhKorn) Bounds() []framework.Bounds {
	return []framework.Bounds{
		{L: 0, H: 5},
		{L: 0, H: 3},
	}
}

// TrueParetoFront traces the known front: it follows x0 = x1 up to (3, 3) and
// then x1 stays pinned at 3.
func (p *BinhKorn) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x0 := 5 * float64(i) / float64(numPoints-1)
		x1 := math.Min(x0, 3)
		points[i] = framework.ObjectiveSpacePoint{
			p.f1([]float64{x0, x1}),
			p.f2([]float64{x0, x1}),
		}
	}
	return points
}
