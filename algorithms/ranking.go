package algorithms

import (
	"github.com/paretolab/moea/framework"
)

// Dominates checks if individual a dominates individual b under the given
// per-objective directions: a must be at least as good on every objective and
// strictly better on at least one. Directions must be validated beforehand
// (see Config.Validate).
func Dominates(a, b *Individual, directions []framework.Direction) bool {
	better := false
	for i := range a.Objectives {
		if worse(directions[i], a.Objectives[i], b.Objectives[i]) {
			return false
		}
		if worse(directions[i], b.Objectives[i], a.Objectives[i]) {
			better = true
		}
	}
	return better
}

func worse(d framework.Direction, x, y float64) bool {
	if d == framework.Max {
		return x < y
	}
	return x > y
}

// NonDominatedSort performs fast non-dominated sorting on the population and
// assigns Rank on every individual. Domination counts and dominating sets are
// per-call scratch tables, so repeated calls on the same population are
// idempotent. Must be re-run whenever population membership changes.
func NonDominatedSort(population []*Individual, directions []framework.Direction) [][]*Individual {
	var fronts [][]*Individual
	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if Dominates(population[i], population[j], directions) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(population[j], population[i], directions) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []*Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts by peeling: removing a front frees every
	// individual dominated only by its members.
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []*Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// GetParetoFront extracts the objective-space points of the first
// non-dominated front of the population.
func GetParetoFront(population []*Individual, directions []framework.Direction) []framework.ObjectiveSpacePoint {
	if len(population) == 0 {
		return nil
	}

	fronts := NonDominatedSort(population, directions)
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return nil
	}

	paretoFront := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, sol := range fronts[0] {
		point := make(framework.ObjectiveSpacePoint, len(sol.Objectives))
		copy(point, sol.Objectives)
		paretoFront[i] = point
	}

	return paretoFront
}
