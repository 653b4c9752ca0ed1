package schema

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// NormalizeName normalizes a CSV header cell into a column name:
// trimmed, lowercased, spaces replaced with underscores.
func NormalizeName(header string) string {
	name := strings.TrimSpace(header)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// TableName derives the destination table name from an object key:
// the final path segment, lowercased, with a trailing .csv stripped.
func TableName(key string) string {
	base := path.Base(key)
	base = strings.ToLower(base)
	return strings.TrimSuffix(base, ".csv")
}

// Infer builds a Table definition from a CSV header row and data rows.
// Each rows entry must have the same length as header. Empty cells are
// treated as NULL and do not participate in type detection.
func Infer(name string, header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("table %s: header row has no columns", name)
	}

	cols := make([]Column, len(header))
	for i, h := range header {
		colName := NormalizeName(h)
		if colName == "" {
			return nil, fmt.Errorf("table %s: column %d has an empty name", name, i+1)
		}
		cols[i] = Column{Name: colName, Type: inferColumn(rows, i)}
	}

	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.Name] {
			return nil, fmt.Errorf("table %s: duplicate column name %q after normalization", name, c.Name)
		}
		seen[c.Name] = true
	}

	return &Table{Name: name, Columns: cols}, nil
}

// inferColumn scans every non-empty value of column idx and applies the
// precedence integer > numeric > boolean > text. A column with no
// non-empty values is text.
func inferColumn(rows [][]string, idx int) ColumnType {
	sawValue := false
	allInt, allFloat, allBool := true, true, true

	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		sawValue = true

		if allInt && !isInteger(v) {
			allInt = false
		}
		if allFloat && !isFloat(v) {
			allFloat = false
		}
		if allBool && !isBoolean(v) {
			allBool = false
		}
		if !allInt && !allFloat && !allBool {
			return TypeText
		}
	}

	switch {
	case !sawValue:
		return TypeText
	case allInt:
		return TypeInteger
	case allFloat:
		return TypeNumeric
	case allBool:
		return TypeBoolean
	default:
		return TypeText
	}
}

func isInteger(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

func isFloat(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	// Reject Inf/NaN spellings; they are not valid NUMERIC literals.
	return !strings.ContainsAny(v, "iInN")
}

// isBoolean accepts the PostgreSQL boolean literals true/false and t/f,
// case-insensitively. Bare 1/0 stay integers by precedence.
func isBoolean(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "t", "f":
		return true
	}
	return false
}

// ParseValue converts a raw CSV cell into the Go value loaded for the
// given column type. Empty cells become nil, which the COPY protocol
// writes as SQL NULL.
func ParseValue(raw string, t ColumnType) (interface{}, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}

	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer: %w", raw, err)
		}
		return n, nil
	case TypeNumeric:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not numeric: %w", raw, err)
		}
		return f, nil
	case TypeBoolean:
		switch strings.ToLower(v) {
		case "true", "t":
			return true, nil
		case "false", "f":
			return false, nil
		}
		return nil, fmt.Errorf("value %q is not a boolean", raw)
	default:
		return raw, nil
	}
}
