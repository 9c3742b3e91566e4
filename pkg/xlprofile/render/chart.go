package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

// viridis is the Viridis colour scale from 0% to 100% missing.
var viridis = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// MissingChartTitle returns the chart title for a sheet.
func MissingChartTitle(sheetName string) string {
	return "Missing Values by Column: " + sheetName
}

// MissingChart builds a bar chart with one bar per column whose height and
// colour follow the column's missing percentage.
func MissingChart(sheetName string, profiles []models.ColumnProfile) *charts.Bar {
	names := make([]string, len(profiles))
	data := make([]opts.BarData, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
		data[i] = opts.BarData{Name: p.Name, Value: p.MissingPct}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: MissingChartTitle(sheetName),
		}),
		charts.WithTitleOpts(opts.Title{Title: MissingChartTitle(sheetName)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Column",
			AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Percentage Missing", Min: 0, Max: 100}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			Text:       []string{"% Missing"},
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	bar.SetXAxis(names).AddSeries("% Missing", data)
	return bar
}

// WriteChart renders the chart as a standalone HTML page.
func WriteChart(w io.Writer, bar *charts.Bar) error {
	return bar.Render(w)
}
