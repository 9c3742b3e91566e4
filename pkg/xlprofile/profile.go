package xlprofile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/render"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/stats"
	"go.uber.org/zap"
)

// Profile loads one sheet with inferred types and computes its metadata,
// per-column data quality and value samples. Nothing is printed. Errors are
// *ProfileError values.
func Profile(path, sheetName string, opts Options) (*models.Report, error) {
	sheet, err := ReadSheet(path, sheetName, opts)
	if err != nil {
		return nil, err
	}
	return &models.Report{
		Metadata: stats.Describe(sheet),
		Quality:  stats.Quality(sheet),
		Samples:  stats.NewSampler(opts.Seed).Samples(sheet, opts.sampleSize()),
	}, nil
}

// Overview prints the profile of one sheet to opts.Output: a metadata table,
// a data-quality table and a value-sample table, each written as soon as it
// is computed, then displays the missing-values chart.
//
// Overview never fails: any error, including a missing sheet, is reported as
// a single "Error processing sheet" line on the output. Blocks printed before
// the failure remain.
func Overview(path, sheetName string, opts Options) {
	out := opts.output()
	log := opts.logger().With(zap.String("sheet", sheetName), zap.String("path", path))

	if err := overview(out, log, path, sheetName, opts); err != nil {
		log.Warn("sheet overview failed", zap.Error(err))
		fmt.Fprintf(out, "Error processing sheet '%s': %v\n", sheetName, cause(err))
	}
}

func overview(out io.Writer, log *zap.Logger, path, sheetName string, opts Options) (err error) {
	stage := StageOpen
	defer func() {
		if r := recover(); r != nil {
			err = NewProfileError(sheetName, stage, fmt.Errorf("panic: %v", r))
		}
	}()

	sheet, err := ReadSheet(path, sheetName, opts)
	if err != nil {
		return err
	}
	log.Debug("sheet loaded", zap.Int("rows", sheet.Rows), zap.Int("columns", sheet.NumColumns()))

	stage = StageMetadata
	md := stats.Describe(sheet)
	if err := render.WriteBanner(out, render.TitleOverview+": "+sheetName, 1); err != nil {
		return NewProfileError(sheetName, stage, err)
	}
	if err := render.WriteMetadata(out, md); err != nil {
		return NewProfileError(sheetName, stage, err)
	}

	stage = StageQuality
	profiles := stats.Quality(sheet)
	if err := render.WriteBanner(out, render.TitleQuality, 2); err != nil {
		return NewProfileError(sheetName, stage, err)
	}
	if err := render.WriteQuality(out, profiles); err != nil {
		return NewProfileError(sheetName, stage, err)
	}

	stage = StageSamples
	samples := stats.NewSampler(opts.Seed).Samples(sheet, opts.sampleSize())
	if err := render.WriteBanner(out, render.TitleSample, 2); err != nil {
		return NewProfileError(sheetName, stage, err)
	}
	if err := render.WriteSamples(out, samples); err != nil {
		return NewProfileError(sheetName, stage, err)
	}

	if !opts.ShouldShowChart() {
		log.Debug("chart disabled")
		return nil
	}

	stage = StageChart
	var page bytes.Buffer
	if err := render.WriteChart(&page, render.MissingChart(sheetName, profiles)); err != nil {
		return NewProfileError(sheetName, stage, err)
	}

	stage = StageDisplay
	if err := opts.displayer().Display(&page); err != nil {
		return NewProfileError(sheetName, stage, err)
	}
	log.Debug("chart displayed", zap.Int("bytes", page.Len()))
	return nil
}

// cause strips the ProfileError wrapper so the diagnostic shows the
// underlying message.
func cause(err error) error {
	var pe *ProfileError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err
	}
	return err
}
