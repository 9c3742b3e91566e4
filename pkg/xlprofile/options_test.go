package xlprofile

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/render"
	"go.uber.org/zap"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, []string{"", "NA"}, opts.NAValues)
	assert.Equal(t, DefaultSampleSize, opts.SampleSize)
	assert.True(t, opts.ShouldShowChart())
	assert.Nil(t, opts.Seed)
}

func TestOptionsAccessors(t *testing.T) {
	var opts Options
	assert.Equal(t, os.Stdout, opts.output())
	assert.NotNil(t, opts.logger())
	assert.Equal(t, DefaultSampleSize, opts.sampleSize())
	assert.IsType(t, render.BrowserDisplayer{}, opts.displayer())

	var buf bytes.Buffer
	log := zap.NewExample()
	show := false
	opts = Options{
		Output:     &buf,
		Logger:     log,
		SampleSize: 5,
		ShowChart:  &show,
		ChartPath:  "chart.html",
	}
	assert.Equal(t, &buf, opts.output())
	assert.Equal(t, log, opts.logger())
	assert.Equal(t, 5, opts.sampleSize())
	assert.False(t, opts.ShouldShowChart())
	assert.Equal(t, render.FileDisplayer{Path: "chart.html"}, opts.displayer())

	opts.Displayer = render.DisplayerFunc(nil)
	assert.IsType(t, render.DisplayerFunc(nil), opts.displayer())
}

func TestProfileErrorUnwrap(t *testing.T) {
	err := NewProfileError("Orders", StageQuality, ErrSheetNotFound)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.Equal(t, `profile error in sheet "Orders" (quality): sheet not found`, err.Error())
}
