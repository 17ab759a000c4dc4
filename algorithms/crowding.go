package algorithms

import (
	"math"
	"sort"
)

// CrowdingDistance calculates crowding distance for individuals in a front.
// Distances are reset to 0 first; the front is re-sorted per objective, so the
// boundary members holding +Inf can differ from one objective to the next. A
// single-member front keeps its distance at 0.
func CrowdingDistance(front []*Individual) {
	for i := range front {
		front[i].Distance = 0
	}
	if len(front) < 2 {
		return
	}

	numObjectives := len(front[0].Objectives)
	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objectives[m] < front[j].Objectives[m]
		})

		// Set boundary points to infinity
		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		scale := front[len(front)-1].Objectives[m] - front[0].Objectives[m]
		if scale == 0 {
			scale = 1
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Objectives[m] - front[i-1].Objectives[m]) / scale
		}
	}
}
