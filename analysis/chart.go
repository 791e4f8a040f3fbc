package analysis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderDeltaChart draws the delta per sweep of every solver in the dataset
// as an HTML line chart
func RenderDeltaChart(w io.Writer, title string, ds *DeltaDataset) error {
	numSweeps := 0
	for _, series := range ds.Series {
		if len(series) > numSweeps {
			numSweeps = len(series)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "largest value change per sweep",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sweep"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "delta"}),
	)

	sweeps := make([]string, numSweeps)
	for i := range sweeps {
		sweeps[i] = fmt.Sprintf("%d", i+1)
	}
	line = line.SetXAxis(sweeps)
	for _, name := range ds.Solvers() {
		series := ds.Series[name]
		items := make([]opts.LineData, 0, len(series))
		for _, d := range series {
			items = append(items, opts.LineData{Value: d})
		}
		line.AddSeries(name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// SaveDeltaChart renders the chart into the file at path, creating its directory
func SaveDeltaChart(path, title string, ds *DeltaDataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return RenderDeltaChart(f, title, ds)
}
