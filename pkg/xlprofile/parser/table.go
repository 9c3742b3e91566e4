package parser

import (
	"strconv"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

// BuildSheet turns extracted rows into a column table. The first row holding
// a value is the header; rows after it up to the last non-empty row are data.
// Columns start at column A and end at the rightmost non-empty cell.
// Blank header cells are named "Unnamed: <position>" and repeated names get
// ".1", ".2", ... suffixes.
//
// Text cells matching na become missing values in data rows only, so a
// header such as "None" keeps its name and a trailing row of tokens still
// counts as a row.
func BuildSheet(name string, rows [][]models.Value, na NASet) *models.SheetData {
	sheet := &models.SheetData{Name: name}

	bounds := FindDataBounds(rows)
	if bounds.Empty {
		return sheet
	}

	width := bounds.MaxCol + 1
	names := headerNames(rows[bounds.MinRow], width)

	dataRows := rows[bounds.MinRow+1 : bounds.MaxRow+1]
	sheet.Rows = len(dataRows)
	sheet.Columns = make([]models.Column, width)
	for c := 0; c < width; c++ {
		values := make([]models.Value, len(dataRows))
		for r, row := range dataRows {
			if c >= len(row) {
				continue
			}
			v := row[c]
			if v.Kind == models.KindText && na.Contains(v.Str) {
				continue
			}
			values[r] = v
		}
		sheet.Columns[c] = models.Column{
			Name:   names[c],
			Type:   InferType(values),
			Values: values,
		}
	}

	return sheet
}

// BuildTextSheet is BuildSheet for rows read as text. Every column is typed
// as string, including columns without any value.
func BuildTextSheet(name string, rows [][]models.Value, na NASet) *models.SheetData {
	sheet := BuildSheet(name, rows, na)
	for i := range sheet.Columns {
		sheet.Columns[i].Type = models.TypeString
	}
	return sheet
}

func headerNames(header []models.Value, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	counts := make(map[string]int, width)

	for c := 0; c < width; c++ {
		name := ""
		if c < len(header) && !header[c].IsMissing() {
			name = header[c].String()
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(c)
		}
		if used[name] {
			base := name
			n := counts[base]
			if n == 0 {
				n = 1
			}
			for used[name] {
				name = base + "." + strconv.Itoa(n)
				n++
			}
			counts[base] = n
		}
		used[name] = true
		names[c] = name
	}

	return names
}

// InferType infers a column type from its values.
func InferType(values []models.Value) models.DataType {
	var (
		seen     [models.KindDate + 1]bool
		missing  bool
		integral = true
	)
	for _, v := range values {
		if v.IsMissing() {
			missing = true
			continue
		}
		seen[v.Kind] = true
		if v.Kind == models.KindNumber && !v.Integral {
			integral = false
		}
	}

	kinds := 0
	for k := models.KindText; k <= models.KindDate; k++ {
		if seen[k] {
			kinds++
		}
	}

	switch {
	case kinds == 0:
		return models.TypeFloat64
	case kinds > 1:
		return models.TypeMixed
	case seen[models.KindNumber]:
		if integral && !missing {
			return models.TypeInt64
		}
		return models.TypeFloat64
	case seen[models.KindBool]:
		return models.TypeBool
	case seen[models.KindDate]:
		return models.TypeDatetime
	default:
		return models.TypeString
	}
}
