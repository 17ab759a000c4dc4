package algorithms

import (
	"math"
	"math/rand/v2"

	"github.com/paretolab/moea/framework"
)

// TournamentSelect samples size distinct members uniformly without replacement
// and returns the tournament winner. A contestant replaces the current best
// only if it outperforms it (lower rank, or equal rank with higher crowding
// distance) and an independent draw falls within prob; the tournament is
// deliberately loose, so a better contestant can still lose.
func TournamentSelect(rng *rand.Rand, population []*Individual, size int, prob float64) *Individual {
	perm := rng.Perm(len(population))[:size]

	best := population[perm[0]]
	for _, idx := range perm[1:] {
		contestant := population[idx]
		if outperforms(contestant, best) && rng.Float64() <= prob {
			best = contestant
		}
	}
	return best
}

func outperforms(a, b *Individual) bool {
	return a.Rank < b.Rank || (a.Rank == b.Rank && a.Distance > b.Distance)
}

// Crossover performs SBX (Simulated Binary Crossover) with distribution index
// etaC, producing two fresh children. No bound clamping happens here; the
// polynomial mutation that follows clamps.
func Crossover(rng *rand.Rand, parent1, parent2 *Individual, etaC float64) (*Individual, *Individual) {
	numVars := len(parent1.Variables)
	child1 := &Individual{Variables: make([]float64, numVars)}
	child2 := &Individual{Variables: make([]float64, numVars)}

	exp := 1.0 / (etaC + 1.0)
	for i := 0; i < numVars; i++ {
		u := rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, exp)
		} else {
			beta = math.Pow(2*(1-u), -exp)
		}

		mid := (parent1.Variables[i] + parent2.Variables[i]) / 2
		halfDiff := math.Abs(parent1.Variables[i]-parent2.Variables[i]) / 2
		child1.Variables[i] = mid + beta*halfDiff
		child2.Variables[i] = mid - beta*halfDiff
	}

	return child1, child2
}

// Mutate performs polynomial mutation with distribution index etaM on every
// gene, then clamps it into its bounds.
func Mutate(rng *rand.Rand, individual *Individual, bounds []framework.Bounds, etaM float64) {
	exp := 1.0 / (etaM + 1.0)
	for i, b := range bounds {
		u := rng.Float64()
		gene := individual.Variables[i]
		if u < 0.5 {
			delta := math.Pow(2*u, exp) - 1
			gene += delta * (gene - b.L)
		} else {
			delta := 1 - math.Pow(2*(1-u), exp)
			gene += delta * (b.H - gene)
		}
		individual.Variables[i] = math.Max(b.L, math.Min(b.H, gene))
	}
}

// generateOffspring builds a full child set of the parent population's size.
// Parents must be distinct by decision-variable value; a child pair is kept
// only when both children are feasible. Attempts that fail either check count
// against the retry budget, which resets on every accepted pair.
func (n *NSGAII) generateOffspring(population []*Individual) ([]*Individual, error) {
	children := make([]*Individual, 0, len(population))
	retries := 0

	for len(children) < len(population) {
		parent1 := TournamentSelect(n.rng, population, n.cfg.TournamentSolutions, n.cfg.TournamentProbability)
		parent2 := TournamentSelect(n.rng, population, n.cfg.TournamentSolutions, n.cfg.TournamentProbability)

		if parent1.EqualVariables(parent2) {
			retries++
			if retries > n.cfg.MaxSampleRetries {
				return nil, &framework.InfeasibleError{Stage: "offspring generation", Retries: retries}
			}
			continue
		}

		child1, child2 := Crossover(n.rng, parent1, parent2, n.cfg.CrossoverConstant)
		Mutate(n.rng, child1, n.bounds, n.cfg.MutationConstant)
		Mutate(n.rng, child2, n.bounds, n.cfg.MutationConstant)

		if !framework.Feasible(n.problem, child1.Variables) || !framework.Feasible(n.problem, child2.Variables) {
			retries++
			if retries > n.cfg.MaxSampleRetries {
				return nil, &framework.InfeasibleError{Stage: "offspring generation", Retries: retries}
			}
			continue
		}
		retries = 0

		child1.Objectives = framework.Evaluate(n.problem, child1.Variables)
		child2.Objectives = framework.Evaluate(n.problem, child2.Variables)
		children = append(children, child1, child2)
	}

	return children, nil
}
