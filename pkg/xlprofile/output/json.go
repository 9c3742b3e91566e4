// Package output serializes profiles and loaded workbooks to JSON.
package output

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON marshals v, indented with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

type sampleView struct {
	Column string `json:"column"`
	Values []any  `json:"values"`
}

type reportView struct {
	Metadata models.Metadata        `json:"metadata"`
	Quality  []models.ColumnProfile `json:"quality"`
	Samples  []sampleView           `json:"samples"`
}

type columnView struct {
	Name   string          `json:"name"`
	Type   models.DataType `json:"type"`
	Values []any           `json:"values"`
}

type sheetView struct {
	Name    string       `json:"name"`
	Rows    int          `json:"rows"`
	Columns []columnView `json:"columns"`
}

type workbookView struct {
	BookName   string      `json:"book_name"`
	SheetNames []string    `json:"sheet_names"`
	Sheets     []sheetView `json:"sheets"`
}

// ReportToJSON serializes a report including its sampled values.
func ReportToJSON(r *models.Report, pretty bool) ([]byte, error) {
	view := reportView{
		Metadata: r.Metadata,
		Quality:  r.Quality,
		Samples:  make([]sampleView, len(r.Samples)),
	}
	if view.Quality == nil {
		view.Quality = []models.ColumnProfile{}
	}
	for i, s := range r.Samples {
		view.Samples[i] = sampleView{Column: s.Column, Values: plain(s.Values)}
	}
	return ToJSON(view, pretty)
}

// SheetToJSON serializes one sheet with its cell values, column by column.
func SheetToJSON(s *models.SheetData, pretty bool) ([]byte, error) {
	return ToJSON(newSheetView(s), pretty)
}

// WorkbookToJSON serializes every sheet in workbook order.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	view := workbookView{
		BookName:   wb.BookName,
		SheetNames: wb.SheetNames,
		Sheets:     make([]sheetView, 0, len(wb.SheetNames)),
	}
	for _, name := range wb.SheetNames {
		if s, ok := wb.Sheets[name]; ok {
			view.Sheets = append(view.Sheets, newSheetView(s))
		}
	}
	return ToJSON(view, pretty)
}

func newSheetView(s *models.SheetData) sheetView {
	view := sheetView{
		Name:    s.Name,
		Rows:    s.Rows,
		Columns: make([]columnView, len(s.Columns)),
	}
	for i, c := range s.Columns {
		view.Columns[i] = columnView{Name: c.Name, Type: c.Type, Values: plain(c.Values)}
	}
	return view
}

// plain converts values to JSON scalars. Missing values become null.
func plain(values []models.Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}
	return out
}
