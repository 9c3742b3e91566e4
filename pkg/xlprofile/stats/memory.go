package stats

import (
	"unsafe"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

var (
	valueSize  = int64(unsafe.Sizeof(models.Value{}))
	columnSize = int64(unsafe.Sizeof(models.Column{}))
	sheetSize  = int64(unsafe.Sizeof(models.SheetData{}))
)

// DeepSize estimates the in-memory footprint of a sheet in bytes: the sheet
// and column headers, every value slot and the bytes of every text payload
// and column name.
func DeepSize(sheet *models.SheetData) int64 {
	size := sheetSize + int64(len(sheet.Name))
	for i := range sheet.Columns {
		col := &sheet.Columns[i]
		size += columnSize + int64(len(col.Name)) + int64(len(col.Type))
		size += int64(cap(col.Values)) * valueSize
		for _, v := range col.Values {
			if v.Kind == models.KindText {
				size += int64(len(v.Str))
			}
		}
	}
	return size
}
