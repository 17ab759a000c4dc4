package framework

import (
	"math/rand/v2"
)

// Direction tells the engine how an objective is to be optimized.
type Direction string

const (
	Min Direction = "Min"
	Max Direction = "Max"
)

// Valid reports whether d is one of the recognized direction tokens.
func (d Direction) Valid() bool {
	return d == Min || d == Max
}

// ObjectiveFunc maps a decision-variable vector to a single objective value.
type ObjectiveFunc func([]float64) float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func([]float64) bool

// Bounds is the inclusive [L, H] range of one decision variable.
type Bounds struct {
	L float64
	H float64
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	// Bounds returns the [lower, upper] range of each decision variable.
	Bounds() []Bounds

	// ObjectiveFuncs and Directions are aligned index for index.
	ObjectiveFuncs() []ObjectiveFunc
	Directions() []Direction

	// Constraints must all hold for a candidate to be feasible. An empty
	// or nil slice means unconditionally feasible.
	Constraints() []Constraint

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Feasible reports whether vars satisfies every constraint of the problem.
func Feasible(p Problem, vars []float64) bool {
	for _, c := range p.Constraints() {
		if !c(vars) {
			return false
		}
	}
	return true
}

// Evaluate applies each objective function to vars, in declaration order.
func Evaluate(p Problem, vars []float64) []float64 {
	funcs := p.ObjectiveFuncs()
	objs := make([]float64, len(funcs))
	for i, f := range funcs {
		objs[i] = f(vars)
	}
	return objs
}

// RandomVariables draws one decision-variable vector uniformly within bounds.
func RandomVariables(rng *rand.Rand, bounds []Bounds) []float64 {
	vars := make([]float64, len(bounds))
	for i, b := range bounds {
		vars[i] = b.L + rng.Float64()*(b.H-b.L)
	}
	return vars
}
