package schema

import (
	"fmt"
	"strings"
)

// QuoteIdentifier double-quotes a PostgreSQL identifier, escaping any
// embedded quotes. Inferred names come from file content, so they are
// always quoted rather than trusted.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CreateTableSQL renders the CREATE TABLE IF NOT EXISTS statement for an
// inferred table. No primary key, constraints or indexes; re-running
// against an existing table is a no-op even when the inferred schema
// differs.
func CreateTableSQL(t *Table) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = fmt.Sprintf("%s %s", QuoteIdentifier(c.Name), c.Type.SQLType())
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		QuoteIdentifier(t.Name), strings.Join(cols, ", "))
}
