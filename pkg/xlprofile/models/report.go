package models

// Metadata is the sheet-level summary block.
type Metadata struct {
	// SheetName is the profiled sheet.
	SheetName string `json:"sheet_name"`
	// Rows is the number of data rows.
	Rows int `json:"rows"`
	// Columns is the number of columns.
	Columns int `json:"columns"`
	// MemoryBytes is the estimated deep in-memory size of the table.
	MemoryBytes int64 `json:"memory_bytes"`
	// MemoryMB is MemoryBytes in megabytes, rounded to 2 decimals.
	MemoryMB float64 `json:"memory_mb"`
	// DuplicateRows counts rows equal to an earlier row.
	DuplicateRows int `json:"duplicate_rows"`
}

// ColumnProfile holds the data-quality statistics of one column.
type ColumnProfile struct {
	// Name is the column name.
	Name string `json:"name"`
	// DataType is the inferred column type.
	DataType DataType `json:"data_type"`
	// Missing is the number of missing values.
	Missing int `json:"missing"`
	// NonMissing is the number of present values.
	NonMissing int `json:"non_missing"`
	// MissingPct is the missing share in percent, rounded to 1 decimal.
	MissingPct float64 `json:"missing_pct"`
	// Unique is the number of distinct present values.
	Unique int `json:"unique"`
}

// SampleSet holds the sampled values of one column.
type SampleSet struct {
	// Column is the column name.
	Column string `json:"column"`
	// Values holds up to the configured sample size of present values.
	Values []Value `json:"-"`
}

// Report is the full profile of one sheet.
type Report struct {
	Metadata Metadata        `json:"metadata"`
	Quality  []ColumnProfile `json:"quality"`
	Samples  []SampleSet     `json:"samples"`
}
