package parser

import (
	"fmt"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds is the bounding box of the non-missing cells of a sheet,
// 0-based and inclusive. Empty reports a sheet without any value.
type DataBounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	Empty          bool
}

// Range converts the bounds to Excel range notation (e.g. "A1:D10").
func (b DataBounds) Range() string {
	if b.Empty {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// FindDataBounds finds the bounding box of non-missing cells.
func FindDataBounds(rows [][]models.Value) DataBounds {
	b := DataBounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsMissing() {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if b.MaxRow < 0 || rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if b.MaxCol < 0 || colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	b.Empty = b.MinRow < 0
	return b
}
