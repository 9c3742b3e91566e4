// Package render writes profile reports as console tables and charts.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

// ruleWidth is the width of the dashed rule framing section titles.
const ruleWidth = 60

// Section titles.
const (
	TitleOverview = "DATA OVERVIEW"
	TitleQuality  = "DATA QUALITY ASSESSMENT"
	TitleSample   = "VALUE SAMPLE"
)

// WriteBanner writes a section title framed by dashed rules. gap blank
// lines are written before the frame.
func WriteBanner(w io.Writer, title string, gap int) error {
	rule := strings.Repeat("-", ruleWidth)
	_, err := fmt.Fprintf(w, "%s%s\n%s\n%s\n", strings.Repeat("\n", gap), rule, title, rule)
	return err
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleASCII)),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// WriteMetadata writes the metadata block as a key/value table.
func WriteMetadata(w io.Writer, md models.Metadata) error {
	t := newTable(w)
	t.Header("Metadata", "Value")
	rows := [][]string{
		{"Sheet Name", md.SheetName},
		{"Rows", strconv.Itoa(md.Rows)},
		{"Columns", strconv.Itoa(md.Columns)},
		{"Memory Usage", fmt.Sprintf("%.2f MB", md.MemoryMB)},
		{"Duplicate Rows", strconv.Itoa(md.DuplicateRows)},
	}
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

// WriteQuality writes the data-quality block, one row per column.
func WriteQuality(w io.Writer, profiles []models.ColumnProfile) error {
	if len(profiles) == 0 {
		return nil
	}
	t := newTable(w)
	t.Header("", "Data Type", "Missing Values", "% Missing", "Unique Values")
	for _, p := range profiles {
		if err := t.Append([]string{
			p.Name,
			string(p.DataType),
			strconv.Itoa(p.Missing),
			strconv.FormatFloat(p.MissingPct, 'f', 1, 64),
			strconv.Itoa(p.Unique),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

// WriteSamples writes the sample-values block. Row k holds the k-th sample
// of every column; columns with fewer samples are left blank.
func WriteSamples(w io.Writer, samples []models.SampleSet) error {
	if len(samples) == 0 {
		return nil
	}
	header := make([]any, len(samples))
	depth := 0
	for i, s := range samples {
		header[i] = s.Column
		depth = max(depth, len(s.Values))
	}

	t := newTable(w)
	t.Header(header...)
	for k := 0; k < depth; k++ {
		row := make([]string, len(samples))
		for i, s := range samples {
			if k < len(s.Values) {
				row[i] = s.Values[k].String()
			}
		}
		if err := t.Append(row); err != nil {
			return err
		}
	}
	return t.Render()
}
