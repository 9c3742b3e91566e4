package xlprofile

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/render"
)

// recorder is a chart displayer that keeps the pages it was given.
type recorder struct {
	pages []string
}

func (r *recorder) displayer() render.Displayer {
	return render.DisplayerFunc(func(page io.Reader) error {
		b, err := io.ReadAll(page)
		if err != nil {
			return err
		}
		r.pages = append(r.pages, string(b))
		return nil
	})
}

func testOptions(out io.Writer, d render.Displayer) Options {
	seed := uint64(1)
	opts := DefaultOptions()
	opts.Output = out
	opts.Seed = &seed
	opts.Displayer = d
	return opts
}

func TestProfileOrders(t *testing.T) {
	path := writeOrders(t)

	report, err := Profile(path, "Orders", testOptions(io.Discard, nil))
	require.NoError(t, err)

	md := report.Metadata
	assert.Equal(t, "Orders", md.SheetName)
	assert.Equal(t, 100, md.Rows)
	assert.Equal(t, 5, md.Columns)
	assert.Equal(t, 0, md.DuplicateRows)
	assert.Positive(t, md.MemoryBytes)

	require.Len(t, report.Quality, 5)
	for _, p := range report.Quality {
		assert.Equal(t, md.Rows, p.Missing+p.NonMissing, p.Name)
	}

	notes := report.Quality[4]
	assert.Equal(t, "notes", notes.Name)
	assert.Equal(t, 100, notes.Missing)
	assert.Equal(t, 100.0, notes.MissingPct)
	assert.Equal(t, 0, notes.Unique)

	orderID := report.Quality[0]
	assert.Equal(t, models.TypeInt64, orderID.DataType)
	assert.Equal(t, 0.0, orderID.MissingPct)
	assert.Equal(t, 100, orderID.Unique)

	customer := report.Quality[1]
	assert.Equal(t, 4, customer.Unique)

	require.Len(t, report.Samples, 5)
	for i, s := range report.Samples[:4] {
		assert.Len(t, s.Values, DefaultSampleSize, report.Quality[i].Name)
	}
	assert.Empty(t, report.Samples[4].Values)
}

func TestProfileSeeded(t *testing.T) {
	path := writeOrders(t)
	opts := testOptions(io.Discard, nil)

	first, err := Profile(path, "Orders", opts)
	require.NoError(t, err)
	second, err := Profile(path, "Orders", opts)
	require.NoError(t, err)
	assert.Equal(t, first.Samples, second.Samples)
}

func TestProfileMissingSheet(t *testing.T) {
	path := writeOrders(t)

	report, err := Profile(path, "Returns", DefaultOptions())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Returns", pe.SheetName)
}

func TestOverview(t *testing.T) {
	path := writeOrders(t)
	var out bytes.Buffer
	rec := &recorder{}

	Overview(path, "Orders", testOptions(&out, rec.displayer()))

	text := out.String()
	assert.NotContains(t, text, "Error processing sheet")

	sections := []string{
		render.TitleOverview + ": Orders",
		"Sheet Name",
		render.TitleQuality,
		"order_id",
		render.TitleSample,
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing %q", s)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}
	assert.Contains(t, text, "100.0")

	require.Len(t, rec.pages, 1)
	assert.Contains(t, rec.pages[0], render.MissingChartTitle("Orders"))
}

func TestOverviewNoChart(t *testing.T) {
	path := writeOrders(t)
	var out bytes.Buffer
	rec := &recorder{}

	opts := testOptions(&out, rec.displayer())
	show := false
	opts.ShowChart = &show
	Overview(path, "Orders", opts)

	assert.Contains(t, out.String(), render.TitleSample)
	assert.Empty(t, rec.pages)
}

func TestOverviewChartFile(t *testing.T) {
	path := writeOrders(t)
	chart := filepath.Join(t.TempDir(), "orders.html")

	opts := testOptions(io.Discard, nil)
	opts.ChartPath = chart
	Overview(path, "Orders", opts)

	assert.FileExists(t, chart)
}

func TestOverviewMissingSheet(t *testing.T) {
	path := writeOrders(t)
	var out bytes.Buffer
	rec := &recorder{}

	Overview(path, "Returns", testOptions(&out, rec.displayer()))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "\n"), text)
	assert.True(t, strings.HasPrefix(text, "Error processing sheet 'Returns': "), text)
	assert.Contains(t, text, ErrSheetNotFound.Error())
	assert.Empty(t, rec.pages)
}

func TestOverviewMissingFile(t *testing.T) {
	var out bytes.Buffer

	Overview(filepath.Join(t.TempDir(), "nope.xlsx"), "Orders", testOptions(&out, nil))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "\n"), text)
	assert.Contains(t, text, "Error processing sheet 'Orders': ")
	assert.Contains(t, text, ErrFileNotFound.Error())
}

func TestOverviewDisplayFailure(t *testing.T) {
	path := writeOrders(t)
	var out bytes.Buffer

	failing := render.DisplayerFunc(func(io.Reader) error {
		return errors.New("no browser")
	})
	Overview(path, "Orders", testOptions(&out, failing))

	text := out.String()
	assert.Contains(t, text, render.TitleSample, "blocks printed before the failure stay")
	assert.True(t, strings.HasSuffix(text, "Error processing sheet 'Orders': no browser\n"), text)
}

func TestOverviewRecoversPanic(t *testing.T) {
	path := writeOrders(t)
	var out bytes.Buffer

	panicking := render.DisplayerFunc(func(io.Reader) error {
		panic("display crashed")
	})
	assert.NotPanics(t, func() {
		Overview(path, "Orders", testOptions(&out, panicking))
	})
	assert.Contains(t, out.String(), "Error processing sheet 'Orders': panic: display crashed")
}

func TestOverviewEmptyColumn(t *testing.T) {
	path := writeOrdersSheet(t, "Q1")
	var out bytes.Buffer
	show := false
	opts := testOptions(&out, nil)
	opts.ShowChart = &show

	Overview(path, "Q1", opts)
	text := out.String()

	assert.Contains(t, text, render.TitleOverview+": Q1")
	assert.Regexp(t, `Rows\s*\|\s*100\s*\|`, text)
	assert.Regexp(t, `Columns\s*\|\s*5\s*\|`, text)
	assert.Regexp(t, `notes\s*\|\s*float64\s*\|\s*100\s*\|\s*100\.0\s*\|\s*0\s*\|`, text)

	report, err := Profile(path, "Q1", opts)
	require.NoError(t, err)
	assert.Empty(t, report.Samples[4].Values)
}
