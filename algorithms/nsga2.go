package algorithms

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"k8s.io/klog/v2"

	"github.com/paretolab/moea/framework"
)

const (
	Name = "NSGA-II"

	// DefaultMaxSampleRetries bounds consecutive failed feasibility
	// attempts during initial sampling and offspring generation.
	DefaultMaxSampleRetries = 10000
)

// Config holds the NSGA-II engine parameters.
type Config struct {
	// NumSolutions is the fixed population size. Must be even and positive:
	// offspring are produced in pairs.
	NumSolutions int
	// NumGenerations is the sole termination trigger. Zero means the first
	// front of the initial population is returned as-is.
	NumGenerations int
	// TournamentSolutions is how many distinct members enter each
	// selection tournament. At least 2, at most NumSolutions.
	TournamentSolutions int
	// TournamentProbability in (0, 1] gates every pairwise replacement of
	// the tournament's running best, independently per comparison.
	TournamentProbability float64
	// CrossoverConstant is the SBX distribution index eta_c (> 0).
	CrossoverConstant float64
	// MutationConstant is the polynomial mutation distribution index eta_m (> 0).
	MutationConstant float64
	// UseGRC switches the cutoff-front tie-break from plain crowding
	// distance to the grey relational score.
	UseGRC bool
	// MaxSampleRetries caps consecutive infeasible attempts before the run
	// aborts with an InfeasibleError. Zero selects DefaultMaxSampleRetries.
	MaxSampleRetries int
	// Seed initializes the engine's private random source. A given seed
	// reproduces a run bit for bit.
	Seed uint64
}

// Validate checks the configuration against the problem. Every violation is a
// *framework.ConfigError.
func (c Config) Validate(problem framework.Problem) error {
	if c.NumSolutions <= 0 || c.NumSolutions%2 != 0 {
		return &framework.ConfigError{Field: "NumSolutions", Reason: "must be an even positive integer"}
	}
	if c.NumGenerations < 0 {
		return &framework.ConfigError{Field: "NumGenerations", Reason: "must not be negative"}
	}
	if c.TournamentSolutions < 2 {
		return &framework.ConfigError{Field: "TournamentSolutions", Reason: "must be at least 2"}
	}
	if c.TournamentSolutions > c.NumSolutions {
		return &framework.ConfigError{Field: "TournamentSolutions", Reason: "must not exceed NumSolutions"}
	}
	if c.TournamentProbability <= 0 || c.TournamentProbability > 1 {
		return &framework.ConfigError{Field: "TournamentProbability", Reason: "must be in (0, 1]"}
	}
	if c.CrossoverConstant <= 0 {
		return &framework.ConfigError{Field: "CrossoverConstant", Reason: "must be positive"}
	}
	if c.MutationConstant <= 0 {
		return &framework.ConfigError{Field: "MutationConstant", Reason: "must be positive"}
	}

	directions := problem.Directions()
	if len(problem.ObjectiveFuncs()) == 0 {
		return &framework.ConfigError{Field: "ObjectiveFuncs", Reason: "problem declares zero objectives"}
	}
	if len(directions) != len(problem.ObjectiveFuncs()) {
		return &framework.ConfigError{Field: "Directions", Reason: "must align with ObjectiveFuncs index for index"}
	}
	for i, d := range directions {
		if !d.Valid() {
			return &framework.ConfigError{Field: "Directions", Reason: fmt.Sprintf("unrecognized direction token %q at objective %d", d, i)}
		}
	}
	if len(problem.Bounds()) == 0 {
		return &framework.ConfigError{Field: "Bounds", Reason: "problem declares zero decision variables"}
	}
	return nil
}

// NSGAII is the generational driver: combine, re-rank, trim to size,
// regenerate. It owns its random source; every stochastic draw of a run goes
// through it in a fixed order, so a seed reproduces the run exactly.
type NSGAII struct {
	cfg        Config
	problem    framework.Problem
	bounds     []framework.Bounds
	directions []framework.Direction
	rng        *rand.Rand
}

// NewNSGAII validates the configuration and builds a driver for the problem.
func NewNSGAII(cfg Config, problem framework.Problem) (*NSGAII, error) {
	if err := cfg.Validate(problem); err != nil {
		return nil, err
	}
	if cfg.MaxSampleRetries == 0 {
		cfg.MaxSampleRetries = DefaultMaxSampleRetries
	}
	return &NSGAII{
		cfg:        cfg,
		problem:    problem,
		bounds:     problem.Bounds(),
		directions: problem.Directions(),
		rng:        rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}, nil
}

func (n *NSGAII) Name() string {
	return Name
}

// initialize rejection-samples NumSolutions feasible individuals uniformly
// within bounds and evaluates them.
func (n *NSGAII) initialize() ([]*Individual, error) {
	population := make([]*Individual, 0, n.cfg.NumSolutions)
	retries := 0
	for len(population) < n.cfg.NumSolutions {
		vars := framework.RandomVariables(n.rng, n.bounds)
		if !framework.Feasible(n.problem, vars) {
			retries++
			if retries > n.cfg.MaxSampleRetries {
				return nil, &framework.InfeasibleError{Stage: "initial sampling", Retries: retries}
			}
			continue
		}
		retries = 0
		population = append(population, NewIndividual(vars, framework.Evaluate(n.problem, vars)))
	}
	return population, nil
}

// Run executes the configured number of generations and returns the first
// non-dominated front of the final population. The context carries the logger
// only; there is no cancellation path, termination is generation-count based.
func (n *NSGAII) Run(ctx context.Context) ([]*Individual, error) {
	logger := klog.FromContext(ctx)
	logger.V(4).Info("starting evolution",
		"problem", n.problem.Name(),
		"populationSize", n.cfg.NumSolutions,
		"generations", n.cfg.NumGenerations,
		"tournamentSize", n.cfg.TournamentSolutions,
		"grcTieBreak", n.cfg.UseGRC)

	population, err := n.initialize()
	if err != nil {
		return nil, err
	}

	fronts := NonDominatedSort(population, n.directions)
	for _, front := range fronts {
		CrowdingDistance(front)
	}

	for gen := 0; gen < n.cfg.NumGenerations; gen++ {
		offspring, err := n.generateOffspring(population)
		if err != nil {
			return nil, err
		}

		// Combine parents and offspring; the population doubles until
		// the trim below restores the exact target size.
		combined := append(population, offspring...)
		combinedFronts := NonDominatedSort(combined, n.directions)

		population = make([]*Individual, 0, n.cfg.NumSolutions)
		frontIndex := 0
		for frontIndex < len(combinedFronts) && len(population)+len(combinedFronts[frontIndex]) <= n.cfg.NumSolutions {
			CrowdingDistance(combinedFronts[frontIndex])
			population = append(population, combinedFronts[frontIndex]...)
			frontIndex++
		}

		// The cutoff front would overflow the target size: keep only its
		// most diverse members.
		if len(population) < n.cfg.NumSolutions {
			cutoff := combinedFronts[frontIndex]
			CrowdingDistance(cutoff)
			if n.cfg.UseGRC {
				if err := GRCCrowding(cutoff); err != nil {
					return nil, err
				}
				sort.SliceStable(cutoff, func(i, j int) bool {
					return cutoff[i].GRCDistance > cutoff[j].GRCDistance
				})
			} else {
				sort.SliceStable(cutoff, func(i, j int) bool {
					return cutoff[i].Distance > cutoff[j].Distance
				})
			}
			population = append(population, cutoff[:n.cfg.NumSolutions-len(population)]...)
		}

		// Tournament selection in the next generation needs fresh rank
		// and crowding values on the size-exact population.
		fronts = NonDominatedSort(population, n.directions)
		for _, front := range fronts {
			CrowdingDistance(front)
		}

		logger.V(4).Info("generation complete",
			"generation", gen+1,
			"fronts", len(fronts),
			"firstFrontSize", len(fronts[0]))
	}

	logger.V(4).Info("evolution complete",
		"populationSize", len(population),
		"firstFrontSize", len(fronts[0]))
	return fronts[0], nil
}
