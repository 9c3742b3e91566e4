// Package stats computes descriptive statistics over loaded sheets.
package stats

import (
	"math"
	"strings"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

const bytesPerMB = 1024 * 1024

// Describe computes the metadata block of a sheet.
func Describe(sheet *models.SheetData) models.Metadata {
	size := DeepSize(sheet)
	return models.Metadata{
		SheetName:     sheet.Name,
		Rows:          sheet.Rows,
		Columns:       sheet.NumColumns(),
		MemoryBytes:   size,
		MemoryMB:      Round(float64(size)/bytesPerMB, 2),
		DuplicateRows: DuplicateRows(sheet),
	}
}

// DuplicateRows counts rows whose values in every column equal those of an
// earlier row. Missing values compare equal to each other.
func DuplicateRows(sheet *models.SheetData) int {
	seen := make(map[string]struct{}, sheet.Rows)
	dups := 0
	var b strings.Builder
	for i := 0; i < sheet.Rows; i++ {
		b.Reset()
		for c := range sheet.Columns {
			b.WriteString(sheet.Columns[c].Values[i].Key())
			b.WriteByte(0x1f)
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// Quality computes the data-quality profile of every column in sheet order.
func Quality(sheet *models.SheetData) []models.ColumnProfile {
	profiles := make([]models.ColumnProfile, len(sheet.Columns))
	for i := range sheet.Columns {
		profiles[i] = ProfileColumn(&sheet.Columns[i])
	}
	return profiles
}

// ProfileColumn computes the missing and distinct counts of one column.
// A column without rows reports 0% missing.
func ProfileColumn(col *models.Column) models.ColumnProfile {
	p := models.ColumnProfile{
		Name:     col.Name,
		DataType: col.Type,
	}
	distinct := make(map[string]struct{})
	for _, v := range col.Values {
		if v.IsMissing() {
			p.Missing++
			continue
		}
		p.NonMissing++
		distinct[v.Key()] = struct{}{}
	}
	p.Unique = len(distinct)
	if n := len(col.Values); n > 0 {
		p.MissingPct = Round(float64(p.Missing)/float64(n)*100, 1)
	}
	return p
}

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
