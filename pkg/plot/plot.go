// Package plot renders anytime hypervolume traces and Pareto-front
// scatters to standalone HTML files.
package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/anytime"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

// Anytime renders the hypervolume-over-evaluations trace as a line chart.
func Anytime(log *anytime.Log, driverName, path string) error {
	if len(log.Rows) == 0 {
		return fmt.Errorf("plot: anytime log is empty")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s hypervolume over evaluations", driverName),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "evaluation"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "hypervolume",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	x := make([]int, len(log.Rows))
	y := make([]opts.LineData, len(log.Rows))
	for i, r := range log.Rows {
		x[i] = r.Evaluation
		y[i] = opts.LineData{Value: r.Hypervolume}
	}

	line.SetXAxis(x).AddSeries(driverName, y)

	return render(line, path)
}

// ParetoFront renders the archive's objective vectors as a 2D scatter.
// Callers must not pass an archive whose members carry more than two
// objectives.
func ParetoFront(members []solution.Solution, driverName, path string) error {
	if len(members) == 0 {
		return fmt.Errorf("plot: archive is empty")
	}
	if len(members[0].Objective) != 2 {
		return fmt.Errorf("plot: ParetoFront only supports M=2, got M=%d", len(members[0].Objective))
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Pareto front", driverName),
		}),
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

	points := make([]opts.ScatterData, len(members))
	for i, m := range members {
		points[i] = opts.ScatterData{
			Value:      []float64{m.Objective[0], m.Objective[1]},
			Symbol:     "circle",
			SymbolSize: 6,
		}
	}

	scatter.AddSeries(fmt.Sprintf("%s archive", driverName), points).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return render(scatter, path)
}

func render(c interface{ Render(w io.Writer) error }, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer f.Close()
	return c.Render(f)
}
