package xlprofile

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates a workbook with the given sheets, each a map of cell
// reference to value, and returns its path.
func writeWorkbook(t *testing.T, name string, sheets []string, cells map[string]map[string]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet))
			continue
		}
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for sheet, values := range cells {
		for cell, v := range values {
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// writeOrders creates orders.xlsx with an "Orders" sheet.
func writeOrders(t *testing.T) string {
	t.Helper()
	return writeOrdersSheet(t, "Orders")
}

// writeOrdersSheet creates orders.xlsx with 100 order rows and five columns
// on the named sheet. The last column has a header but no values.
func writeOrdersSheet(t *testing.T, sheet string) string {
	t.Helper()

	cells := map[string]any{
		"A1": "order_id", "B1": "customer", "C1": "amount", "D1": "ordered_at", "E1": "notes",
	}
	customers := []string{"Aoki", "Baba", "Chiba", "Doi"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		row := i + 2
		cells[fmt.Sprintf("A%d", row)] = i + 1
		cells[fmt.Sprintf("B%d", row)] = customers[i%len(customers)]
		cells[fmt.Sprintf("C%d", row)] = float64(i) * 1.5
		cells[fmt.Sprintf("D%d", row)] = start.AddDate(0, 0, i)
	}

	return writeWorkbook(t, "orders.xlsx", []string{sheet}, map[string]map[string]any{
		sheet: cells,
	})
}
