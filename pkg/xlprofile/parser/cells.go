package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
	"github.com/xuri/excelize/v2"
)

// isoDateLayouts are the encodings of ISO 8601 date cells (t="d").
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ExtractTextRows extracts the displayed value of every cell in a sheet.
// Empty cells become missing values; everything else is text, so number
// formats, leading zeros and date text survive as shown. Missing-value
// tokens are kept as text and resolved by BuildSheet.
func ExtractTextRows(f *excelize.File, sheetName string) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			values[colIdx] = models.Text(cellValue)
		}
		result[rowIdx] = values
	}

	return result, nil
}

// typedReader resolves raw cell content into typed values.
type typedReader struct {
	f          *excelize.File
	sheetName  string
	date1904   bool
	dateStyles map[int]bool
}

// ExtractTypedRows extracts the cells of a sheet with their inferred kinds:
// numbers, booleans, dates (ISO cells and numbers carrying a date format)
// and text. Empty cells become missing values.
func ExtractTypedRows(f *excelize.File, sheetName string) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	r := &typedReader{
		f:          f,
		sheetName:  sheetName,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}

	result := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]models.Value, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := r.value(cellName, raw)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}
		result[rowIdx] = values
	}

	return result, nil
}

func (r *typedReader) value(cellName, raw string) (models.Value, error) {
	cellType, err := r.f.GetCellType(r.sheetName, cellName)
	if err != nil {
		return models.Missing(), err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.Date(t), nil
		}
		return models.Text(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw), nil
	}

	num, ok := parseNumber(raw)
	if !ok {
		return models.Text(raw), nil
	}
	if r.isDateCell(cellName) {
		if t, err := excelize.ExcelDateToTime(num, r.date1904); err == nil {
			return models.Date(t), nil
		}
	}
	return models.Number(num), nil
}

// isDateCell reports whether the cell's style applies a date number format.
// Results are cached per style index.
func (r *typedReader) isDateCell(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheetName, cellName)
	if err != nil {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// parseNumber parses a raw numeric cell value.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseISODate(s string) (time.Time, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
