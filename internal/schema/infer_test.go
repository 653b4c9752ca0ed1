package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "id"},
		{"Driver Name", "driver_name"},
		{"  Active  ", "active"},
		{"RATING", "rating"},
		{"pick up time", "pick_up_time"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"datasets/drivers.csv", "drivers"},
		{"datasets/Trips.CSV", "trips"}, // lowercased before the suffix is stripped
		{"drivers.csv", "drivers"},
		{"a/b/c/Riders.csv", "riders"},
		{"datasets/no-extension", "no-extension"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, TableName(tt.key))
		})
	}
}

func TestInfer_ColumnTypes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want ColumnType
	}{
		{"all integers", [][]string{{"1"}, {"42"}, {"-7"}}, TypeInteger},
		{"all floats", [][]string{{"1.5"}, {"2.0"}, {"-0.25"}}, TypeNumeric},
		{"mixed int and float", [][]string{{"1"}, {"2.5"}}, TypeNumeric},
		{"scientific notation", [][]string{{"1e3"}, {"2.5"}}, TypeNumeric},
		{"all booleans", [][]string{{"true"}, {"False"}, {"t"}}, TypeBoolean},
		{"ones and zeros are integers", [][]string{{"1"}, {"0"}}, TypeInteger},
		{"strings", [][]string{{"alice"}, {"bob"}}, TypeText},
		{"mixed numbers and text", [][]string{{"1"}, {"two"}}, TypeText},
		{"mixed boolean and text", [][]string{{"true"}, {"maybe"}}, TypeText},
		{"empty column", [][]string{{""}, {""}}, TypeText},
		{"no rows", nil, TypeText},
		{"integers with empty cells", [][]string{{"1"}, {""}, {"3"}}, TypeInteger},
		{"booleans with empty cells", [][]string{{""}, {"f"}}, TypeBoolean},
		{"infinity is text", [][]string{{"Inf"}, {"1.5"}}, TypeText},
		{"whitespace padded integers", [][]string{{" 1 "}, {"2"}}, TypeInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Infer("sample", []string{"col"}, tt.rows)
			require.NoError(t, err)
			require.Len(t, table.Columns, 1)
			assert.Equal(t, tt.want, table.Columns[0].Type, "inferred %s", table.Columns[0].Type)
		})
	}
}

func TestInfer_Deterministic(t *testing.T) {
	header := []string{"id", "name", "active"}
	rows := [][]string{
		{"1", "alice", "true"},
		{"2", "bob", "false"},
		{"3", "carol", "t"},
	}

	first, err := Infer("drivers", header, rows)
	require.NoError(t, err)
	second, err := Infer("drivers", header, rows)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, TypeInteger, first.Columns[0].Type)
	assert.Equal(t, TypeText, first.Columns[1].Type)
	assert.Equal(t, TypeBoolean, first.Columns[2].Type)
}

func TestInfer_NormalizesHeaderNames(t *testing.T) {
	table, err := Infer("trips", []string{" Trip ID ", "Fare Amount"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"trip_id", "fare_amount"}, table.ColumnNames())
}

func TestInfer_Errors(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		_, err := Infer("t", nil, nil)
		assert.Error(t, err)
	})

	t.Run("blank column name", func(t *testing.T) {
		_, err := Infer("t", []string{"id", "  "}, nil)
		assert.Error(t, err)
	})

	t.Run("duplicate after normalization", func(t *testing.T) {
		_, err := Infer("t", []string{"Driver Name", "driver_name"}, nil)
		assert.Error(t, err)
	})
}

func TestInfer_ShortRowDoesNotPanic(t *testing.T) {
	// A ragged row missing trailing cells must not affect inference of
	// the missing columns.
	table, err := Infer("t", []string{"a", "b"}, [][]string{{"1", "x"}, {"2"}})
	require.NoError(t, err)
	assert.Equal(t, TypeInteger, table.Columns[0].Type)
	assert.Equal(t, TypeText, table.Columns[1].Type)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		colType ColumnType
		want    interface{}
		wantErr bool
	}{
		{"empty is nil", "", TypeInteger, nil, false},
		{"whitespace is nil", "   ", TypeText, nil, false},
		{"integer", "42", TypeInteger, int64(42), false},
		{"negative integer", "-7", TypeInteger, int64(-7), false},
		{"numeric", "2.5", TypeNumeric, 2.5, false},
		{"boolean true", "True", TypeBoolean, true, false},
		{"boolean f", "f", TypeBoolean, false, false},
		{"text passthrough", "alice", TypeText, "alice", false},
		{"bad integer", "abc", TypeInteger, nil, true},
		{"bad numeric", "abc", TypeNumeric, nil, true},
		{"bad boolean", "yes", TypeBoolean, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.raw, tt.colType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
