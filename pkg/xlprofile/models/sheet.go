package models

// DataType is the inferred type of a column.
type DataType string

const (
	// TypeString is a column holding only text.
	TypeString DataType = "string"
	// TypeMixed is a column holding values of more than one kind.
	TypeMixed DataType = "mixed"
	// TypeInt64 is a column of integral numbers without missing values.
	TypeInt64 DataType = "int64"
	// TypeFloat64 is a numeric column, or one with no values at all.
	TypeFloat64 DataType = "float64"
	// TypeBool is a boolean column.
	TypeBool DataType = "bool"
	// TypeDatetime is a date column.
	TypeDatetime DataType = "datetime"
)

// IsText reports whether the type is one of the text-typed kinds.
func (t DataType) IsText() bool {
	return t == TypeString || t == TypeMixed
}

// Column is a named, ordered sequence of cell values.
type Column struct {
	// Name is the header label of the column.
	Name string `json:"name"`
	// Type is the inferred data type.
	Type DataType `json:"type"`
	// Values holds one value per row.
	Values []Value `json:"-"`
}

// SheetData represents one loaded sheet as columns of equal length.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns holds the columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows is the number of data rows (header excluded).
	Rows int `json:"rows"`
}

// NumColumns returns the column count.
func (s *SheetData) NumColumns() int {
	return len(s.Columns)
}

// Row returns the values of row i across all columns.
func (s *SheetData) Row(i int) []Value {
	row := make([]Value, len(s.Columns))
	for c := range s.Columns {
		row[c] = s.Columns[c].Values[i]
	}
	return row
}

// Column returns the column with the given name.
func (s *SheetData) Column(name string) (*Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i], true
		}
	}
	return nil, false
}
