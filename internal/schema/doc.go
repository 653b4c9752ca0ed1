// Package schema infers PostgreSQL table definitions from CSV content.
//
// Inference is deterministic: a column whose non-empty values all parse
// as integers maps to INTEGER, all-float to NUMERIC, all-boolean to
// BOOLEAN, and anything else (mixed content, free text, empty columns)
// to TEXT. Column names are normalized to lowercase snake_case and the
// table name derives from the object key's base filename.
package schema
