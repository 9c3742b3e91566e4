package xlprofile

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadAllSheets loads every sheet of a workbook with all cells read as text,
// keyed by sheet name. Empty cells, opts.NAValues and the built-in missing
// tokens become missing values.
//
// Errors from opening or reading the file are returned unmodified and no
// partial workbook is returned.
func ReadAllSheets(path string, opts Options) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	na := parser.NewNASet(opts.NAValues...)
	sheetList := f.GetSheetList()
	sheets := make(map[string]*models.SheetData, len(sheetList))

	for _, sheetName := range sheetList {
		rows, err := parser.ExtractTextRows(f, sheetName)
		if err != nil {
			return nil, err
		}
		sheets[sheetName] = parser.BuildTextSheet(sheetName, rows, na)
	}

	opts.logger().Debug("workbook loaded",
		zap.String("path", path),
		zap.Int("sheets", len(sheetList)))

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetNames: sheetList,
		Sheets:     sheets,
	}, nil
}

// ReadSheet loads a single sheet with inferred cell types. The sheet name
// must match exactly, including case.
func ReadSheet(path, sheetName string, opts Options) (*models.SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewProfileError(sheetName, StageOpen, ClassifyOpenError(err))
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, NewProfileError(sheetName, StageRead,
			fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName))
	}

	rows, err := parser.ExtractTypedRows(f, sheetName)
	if err != nil {
		return nil, NewProfileError(sheetName, StageRead, err)
	}
	opts.logger().Debug("sheet read",
		zap.String("sheet", sheetName),
		zap.String("range", parser.FindDataBounds(rows).Range()))

	return parser.BuildSheet(sheetName, rows, parser.NewNASet(opts.NAValues...)), nil
}

// ClassifyOpenError maps errors from opening a workbook onto ErrFileNotFound
// or ErrInvalidFormat while keeping the original error in the chain.
func ClassifyOpenError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, zip.ErrFormat),
		errors.Is(err, excelize.ErrWorkbookFileFormat),
		errors.Is(err, excelize.ErrWorkbookPassword):
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	default:
		return err
	}
}
