package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/paretolab/moea/framework"
)

// PlotResults renders a scatter chart of the front found by the algorithm
// into outputDir, overlaying the problem's true Pareto front when the problem
// knows it. Only two-objective problems can be plotted.
func PlotResults(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName, outputDir string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s benchmark", problem.Name())
	}
	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s benchmark", problem.Name())
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s results for %s benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	// Some problems cannot produce their true front; plot without it.
	if trueFront := problem.TrueParetoFront(100); trueFront != nil {
		trueX := make([]opts.ScatterData, len(trueFront))
		for i, p := range trueFront {
			trueX[i] = opts.ScatterData{
				Value:      p,
				Symbol:     "circle",
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("True Pareto Front", trueX)
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)))
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
