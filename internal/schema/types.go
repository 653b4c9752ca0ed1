package schema

// ColumnType is the closed set of destination column types. The mapping
// to SQL types is total: every ColumnType has exactly one SQL rendering.
type ColumnType int

const (
	// TypeText is the fallback for mixed, free-form or all-empty columns.
	TypeText ColumnType = iota

	// TypeInteger covers columns whose values all parse as integers.
	TypeInteger

	// TypeNumeric covers columns whose values all parse as floats.
	TypeNumeric

	// TypeBoolean covers columns whose values all parse as booleans.
	TypeBoolean
)

// SQLType returns the PostgreSQL column type for this ColumnType.
func (t ColumnType) SQLType() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeNumeric:
		return "NUMERIC"
	case TypeBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// String implements fmt.Stringer for diagnostics.
func (t ColumnType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeNumeric:
		return "numeric"
	case TypeBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// Column is a single inferred column.
type Column struct {
	Name string
	Type ColumnType
}

// Table is an inferred table definition.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
