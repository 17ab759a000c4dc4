package algorithms

// Individual wraps one candidate solution in the population together with the
// bookkeeping NSGA-II attaches to it. Rank, Distance and GRCDistance are owned
// by the engine and overwritten on every ranking pass.
type Individual struct {
	Variables  []float64
	Objectives []float64

	// Rank is the index of the non-dominated front the individual belongs
	// to, assigned by NonDominatedSort.
	Rank int
	// Distance is the crowding distance within the individual's front.
	// Boundary members carry +Inf.
	Distance float64
	// GRCDistance is the grey relational score, defined only after
	// GRCCrowding ran on the individual's front.
	GRCDistance float64
}

// NewIndividual wraps an evaluated decision-variable vector.
func NewIndividual(vars, objs []float64) *Individual {
	return &Individual{
		Variables:  vars,
		Objectives: objs,
	}
}

// EqualVariables reports value equality on the decision-variable vectors.
// Two structurally distinct individuals with identical variables are
// interchangeable for parent pairing.
func (s *Individual) EqualVariables(o *Individual) bool {
	if len(s.Variables) != len(o.Variables) {
		return false
	}
	for i := range s.Variables {
		if s.Variables[i] != o.Variables[i] {
			return false
		}
	}
	return true
}
