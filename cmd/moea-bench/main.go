// moea-bench runs the NSGA-II engine against one of the built-in benchmark
// problems and renders the resulting front next to the true Pareto front.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/paretolab/moea/algorithms"
	"github.com/paretolab/moea/benchmarks"
	"github.com/paretolab/moea/framework"
	"github.com/paretolab/moea/util"
)

func main() {
	var (
		problemName = pflag.String("problem", "zdt1", "benchmark problem: zdt1, zdt2, zdt3 or binhkorn")
		numVars     = pflag.Int("variables", 30, "number of decision variables (ZDT problems only)")
		popSize     = pflag.Int("population", 100, "population size (must be even)")
		generations = pflag.Int("generations", 250, "number of generations")
		tournSize   = pflag.Int("tournament-size", 2, "tournament participants per selection")
		tournProb   = pflag.Float64("tournament-probability", 0.9, "probability of accepting a better tournament contestant")
		etaC        = pflag.Float64("eta-c", 2.0, "SBX crossover distribution index")
		etaM        = pflag.Float64("eta-m", 20.0, "polynomial mutation distribution index")
		useGRC      = pflag.Bool("grc", false, "use grey relational tie-break on the cutoff front")
		seed        = pflag.Uint64("seed", 1, "random seed")
		outputDir   = pflag.String("output-dir", ".", "directory for the result plot")
	)
	klog.InitFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	if err := run(*problemName, *numVars, *popSize, *generations, *tournSize, *tournProb, *etaC, *etaM, *useGRC, *seed, *outputDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(problemName string, numVars, popSize, generations, tournSize int, tournProb, etaC, etaM float64, useGRC bool, seed uint64, outputDir string) error {
	var problem framework.Problem
	switch problemName {
	case "zdt1":
		problem = benchmarks.NewZDT1(numVars)
	case "zdt2":
		problem = benchmarks.NewZDT2(numVars)
	case "zdt3":
		problem = benchmarks.NewZDT3(numVars)
	case "binhkorn":
		problem = benchmarks.NewBinhKorn()
	default:
		return fmt.Errorf("unknown problem %q", problemName)
	}

	cfg := algorithms.Config{
		NumSolutions:          popSize,
		NumGenerations:        generations,
		TournamentSolutions:   tournSize,
		TournamentProbability: tournProb,
		CrossoverConstant:     etaC,
		MutationConstant:      etaM,
		UseGRC:                useGRC,
		Seed:                  seed,
	}

	nsga, err := algorithms.NewNSGAII(cfg, problem)
	if err != nil {
		return err
	}

	ctx := klog.NewContext(context.Background(), klog.Background())
	front, err := nsga.Run(ctx)
	if err != nil {
		return err
	}

	results := make([]framework.ObjectiveSpacePoint, len(front))
	for i, sol := range front {
		results[i] = sol.Objectives
	}
	fmt.Printf("%s: %d solutions on the first front\n", problem.Name(), len(front))

	return util.PlotResults(results, problem, algorithms.Name, outputDir)
}
