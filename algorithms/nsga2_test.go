package algorithms

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paretolab/moea/framework"
)

// testProblem is a configurable Problem fixture.
type testProblem struct {
	name        string
	bounds      []framework.Bounds
	objectives  []framework.ObjectiveFunc
	directions  []framework.Direction
	constraints []framework.Constraint
}

func (p *testProblem) Name() string { return p.name }

func (p *testProblem) Bounds() []framework.Bounds { return p.bounds }

func (p *testProblem) ObjectiveFuncs() []framework.ObjectiveFunc { return p.objectives }

func (p *testProblem) Directions() []framework.Direction { return p.directions }

func (p *testProblem) Constraints() []framework.Constraint { return p.constraints }
func (p *testProblem) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}

// schaffer builds the single-variable Schaffer N.1 problem: f1 = x^2,
// f2 = (x-2)^2, both minimized over [-5, 5].
func schaffer() *testProblem {
	return &testProblem{
		name:   "SchafferN1",
		bounds: []framework.Bounds{{L: -5, H: 5}},
		objectives: []framework.ObjectiveFunc{
			func(x []float64) float64 { return x[0] * x[0] },
			func(x []float64) float64 { return (x[0] - 2) * (x[0] - 2) },
		},
		directions: []framework.Direction{framework.Min, framework.Min},
	}
}

func validConfig() Config {
	return Config{
		NumSolutions:          20,
		NumGenerations:        10,
		TournamentSolutions:   2,
		TournamentProbability: 0.9,
		CrossoverConstant:     2.0,
		MutationConstant:      20.0,
		Seed:                  1,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config, *testProblem)
		field  string
	}{
		{
			name:   "odd population size",
			mutate: func(c *Config, _ *testProblem) { c.NumSolutions = 21 },
			field:  "NumSolutions",
		},
		{
			name:   "zero population size",
			mutate: func(c *Config, _ *testProblem) { c.NumSolutions = 0 },
			field:  "NumSolutions",
		},
		{
			name:   "negative generations",
			mutate: func(c *Config, _ *testProblem) { c.NumGenerations = -1 },
			field:  "NumGenerations",
		},
		{
			name:   "tournament too small",
			mutate: func(c *Config, _ *testProblem) { c.TournamentSolutions = 1 },
			field:  "TournamentSolutions",
		},
		{
			name:   "tournament exceeds population",
			mutate: func(c *Config, _ *testProblem) { c.TournamentSolutions = 21 },
			field:  "TournamentSolutions",
		},
		{
			name:   "zero tournament probability",
			mutate: func(c *Config, _ *testProblem) { c.TournamentProbability = 0 },
			field:  "TournamentProbability",
		},
		{
			name:   "tournament probability above one",
			mutate: func(c *Config, _ *testProblem) { c.TournamentProbability = 1.5 },
			field:  "TournamentProbability",
		},
		{
			name:   "non-positive crossover constant",
			mutate: func(c *Config, _ *testProblem) { c.CrossoverConstant = 0 },
			field:  "CrossoverConstant",
		},
		{
			name:   "non-positive mutation constant",
			mutate: func(c *Config, _ *testProblem) { c.MutationConstant = -1 },
			field:  "MutationConstant",
		},
		{
			name:   "zero objectives",
			mutate: func(_ *Config, p *testProblem) { p.objectives = nil; p.directions = nil },
			field:  "ObjectiveFuncs",
		},
		{
			name: "misaligned directions",
			mutate: func(_ *Config, p *testProblem) {
				p.directions = []framework.Direction{framework.Min}
			},
			field: "Directions",
		},
		{
			name: "unrecognized direction token",
			mutate: func(_ *Config, p *testProblem) {
				p.directions = []framework.Direction{framework.Min, "Minimize"}
			},
			field: "Directions",
		},
		{
			name:   "zero decision variables",
			mutate: func(_ *Config, p *testProblem) { p.bounds = nil },
			field:  "Bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			problem := schaffer()
			tt.mutate(&cfg, problem)

			_, err := NewNSGAII(cfg, problem)

			var cfgErr *framework.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigValidateAccepts(t *testing.T) {
	nsga, err := NewNSGAII(validConfig(), schaffer())
	require.NoError(t, err)
	assert.Equal(t, Name, nsga.Name())
}

func TestRunZeroGenerations(t *testing.T) {
	cfg := validConfig()
	cfg.NumGenerations = 0

	nsga, err := NewNSGAII(cfg, schaffer())
	require.NoError(t, err)

	front, err := nsga.Run(context.Background())
	require.NoError(t, err)

	// The front comes from the initial population only.
	require.NotEmpty(t, front)
	assert.LessOrEqual(t, len(front), cfg.NumSolutions)
	assertNonDominated(t, front, []framework.Direction{framework.Min, framework.Min})
	for _, s := range front {
		assert.GreaterOrEqual(t, s.Variables[0], -5.0)
		assert.LessOrEqual(t, s.Variables[0], 5.0)
	}
}

func TestRunConvergesOnSchaffer(t *testing.T) {
	cfg := validConfig()
	cfg.NumGenerations = 30

	nsga, err := NewNSGAII(cfg, schaffer())
	require.NoError(t, err)

	front, err := nsga.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, front)
	assert.LessOrEqual(t, len(front), cfg.NumSolutions)
	assertNonDominated(t, front, []framework.Direction{framework.Min, framework.Min})

	// The Pareto set of Schaffer N.1 is x in [0, 2]; after 30 generations
	// every survivor should at least be near it.
	for _, s := range front {
		assert.Greater(t, s.Variables[0], -1.0)
		assert.Less(t, s.Variables[0], 3.0)
	}
}

func TestRunWithGRCTieBreak(t *testing.T) {
	cfg := validConfig()
	cfg.UseGRC = true
	cfg.NumGenerations = 15

	nsga, err := NewNSGAII(cfg, schaffer())
	require.NoError(t, err)

	front, err := nsga.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, front)
	assertNonDominated(t, front, []framework.Direction{framework.Min, framework.Min})
}

func TestRunIsReproducible(t *testing.T) {
	runOnce := func() [][]float64 {
		cfg := validConfig()
		cfg.Seed = 42
		nsga, err := NewNSGAII(cfg, schaffer())
		require.NoError(t, err)
		front, err := nsga.Run(context.Background())
		require.NoError(t, err)

		objs := make([][]float64, len(front))
		for i, s := range front {
			objs[i] = s.Objectives
		}
		return objs
	}

	first := runOnce()
	second := runOnce()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different fronts (-first +second):\n%s", diff)
	}
}

func TestRunEvaluatesExactlyOnePopulationPerGeneration(t *testing.T) {
	evaluations := 0
	problem := schaffer()
	counted := problem.objectives[0]
	problem.objectives[0] = func(x []float64) float64 {
		evaluations++
		return counted(x)
	}

	cfg := validConfig()
	cfg.NumGenerations = 5

	nsga, err := NewNSGAII(cfg, problem)
	require.NoError(t, err)
	_, err = nsga.Run(context.Background())
	require.NoError(t, err)

	// Initialization evaluates NumSolutions individuals, then every
	// generation evaluates exactly one offspring set of the same size.
	assert.Equal(t, cfg.NumSolutions*(cfg.NumGenerations+1), evaluations)
}

func TestRunInfeasibleInitialSampling(t *testing.T) {
	problem := schaffer()
	problem.constraints = []framework.Constraint{
		func([]float64) bool { return false },
	}

	cfg := validConfig()
	cfg.MaxSampleRetries = 50

	nsga, err := NewNSGAII(cfg, problem)
	require.NoError(t, err)

	_, err = nsga.Run(context.Background())

	var infeasible *framework.InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Equal(t, "initial sampling", infeasible.Stage)
}

func TestRunInfeasibleOffspringGeneration(t *testing.T) {
	// Degenerate bounds collapse every sample to the same vector, so no
	// value-distinct parent pair can ever form.
	problem := schaffer()
	problem.bounds = []framework.Bounds{{L: 1, H: 1}}

	cfg := validConfig()
	cfg.MaxSampleRetries = 50

	nsga, err := NewNSGAII(cfg, problem)
	require.NoError(t, err)

	_, err = nsga.Run(context.Background())

	var infeasible *framework.InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Equal(t, "offspring generation", infeasible.Stage)
}

func TestRunConstrainedProblemKeepsOffspringFeasible(t *testing.T) {
	problem := schaffer()
	problem.constraints = []framework.Constraint{
		func(x []float64) bool { return x[0] >= 0 },
	}

	cfg := validConfig()
	cfg.NumGenerations = 10

	nsga, err := NewNSGAII(cfg, problem)
	require.NoError(t, err)

	front, err := nsga.Run(context.Background())
	require.NoError(t, err)

	for _, s := range front {
		assert.GreaterOrEqual(t, s.Variables[0], 0.0)
	}
}

func assertNonDominated(t *testing.T, front []*Individual, directions []framework.Direction) {
	t.Helper()
	for i := range front {
		for j := range front {
			if i != j && Dominates(front[i], front[j], directions) {
				t.Errorf("front contains dominated solutions: %v dominates %v",
					front[i].Objectives, front[j].Objectives)
			}
		}
	}
}
