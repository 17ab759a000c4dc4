package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/paretolab/moea/framework"
)

// GRCCrowding scores the members of one front by grey relational coefficient,
// as a tie-break alternative to plain crowding distance on the cutoff front.
// CrowdingDistance must have run on the front first: members with infinite
// crowding distance are boundary members, stay maximally diverse and receive
// +Inf here as well. Interior members are normalized column-wise (objectives
// plus the finite crowding distance) and scored against the synthetic ideal
// row; a zero-range column among two or more interior members is reported as
// a DegeneracyError instead of dividing by zero.
func GRCCrowding(front []*Individual) error {
	var interior []*Individual
	for _, s := range front {
		if math.IsInf(s.Distance, 1) {
			s.GRCDistance = math.Inf(1)
		} else {
			interior = append(interior, s)
		}
	}

	if len(interior) == 0 {
		return nil
	}
	if len(interior) == 1 {
		// The sole row is its own reference: every delta is 0 and the
		// coefficient degenerates to its limit value.
		interior[0].GRCDistance = 1
		return nil
	}

	rows := len(interior)
	cols := len(interior[0].Objectives) + 1

	// Normalized decision matrix: objective columns map larger raw values
	// to smaller scores, the crowding column maps larger to larger, so a
	// bigger normalized entry is more favorable in every column.
	norm := mat.NewDense(rows, cols, nil)
	raw := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i, s := range interior {
			if j == cols-1 {
				raw[i] = s.Distance
			} else {
				raw[i] = s.Objectives[j]
			}
		}
		max, min := floats.Max(raw), floats.Min(raw)
		if max == min {
			return &framework.DegeneracyError{Column: j}
		}
		for i, v := range raw {
			if j == cols-1 {
				norm.Set(i, j, (v-min)/(max-min))
			} else {
				norm.Set(i, j, (max-v)/(max-min))
			}
		}
	}

	// Reference row = column-wise maximum of the normalized matrix.
	ref := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, norm)
		ref[j] = floats.Max(col)
	}

	delta := mat.NewDense(rows, cols, nil)
	delta.Apply(func(i, j int, v float64) float64 {
		return math.Abs(ref[j] - v)
	}, norm)

	deltaMin, deltaMax := math.Inf(1), math.Inf(-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := delta.At(i, j)
			deltaMin = math.Min(deltaMin, d)
			deltaMax = math.Max(deltaMax, d)
		}
	}

	coeffs := make([]float64, cols)
	for i, s := range interior {
		for j := 0; j < cols; j++ {
			coeffs[j] = (deltaMin + deltaMax) / (delta.At(i, j) + deltaMax)
		}
		s.GRCDistance = stat.Mean(coeffs, nil)
	}

	return nil
}
