// Package xlprofile loads Excel workbooks and profiles their sheets.
package xlprofile

import (
	"io"
	"os"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/render"
	"go.uber.org/zap"
)

// DefaultSampleSize is the number of sample values drawn per column.
const DefaultSampleSize = 3

// Options configures loading and profiling behavior.
type Options struct {
	// Output receives the printed report. If nil, defaults to os.Stdout.
	Output io.Writer
	// Logger receives debug and warning logs. If nil, logging is disabled.
	Logger *zap.Logger
	// NAValues lists extra cell texts read as missing, on top of the
	// built-in missing tokens.
	NAValues []string
	// SampleSize is the number of values sampled per column.
	// If zero, defaults to DefaultSampleSize.
	SampleSize int
	// Seed fixes the sampling source. If nil, samples differ between runs.
	Seed *uint64
	// ShowChart specifies whether to build and display the missing-values chart.
	// If nil, defaults to true.
	ShowChart *bool
	// ChartPath saves the chart page to this path instead of opening it.
	ChartPath string
	// Displayer shows the chart page. If nil, the chart is written to
	// ChartPath when set, or opened in the browser.
	Displayer render.Displayer
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		NAValues:   []string{"", "NA"},
		SampleSize: DefaultSampleSize,
	}
}

// ShouldShowChart returns whether to build and display the chart.
func (o Options) ShouldShowChart() bool {
	if o.ShowChart != nil {
		return *o.ShowChart
	}
	return true
}

func (o Options) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) sampleSize() int {
	if o.SampleSize > 0 {
		return o.SampleSize
	}
	return DefaultSampleSize
}

func (o Options) displayer() render.Displayer {
	switch {
	case o.Displayer != nil:
		return o.Displayer
	case o.ChartPath != "":
		return render.FileDisplayer{Path: o.ChartPath}
	default:
		return render.BrowserDisplayer{}
	}
}
