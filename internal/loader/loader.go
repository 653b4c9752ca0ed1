// Package loader reads CSV objects from object storage and bulk-loads
// them into PostgreSQL, one table per object, via the COPY protocol.
package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Richard-Gidi/Ridewise/internal/schema"
	"github.com/Richard-Gidi/Ridewise/internal/storage"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

// Conn is the database surface the loader needs: transaction scoping.
// Satisfied by *pgx.Conn; the connection is owned and closed by the
// caller, not the loader.
type Conn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ObjectResult records the outcome for one CSV object.
type ObjectResult struct {
	Key   string
	Table string
	Rows  int64
	Err   error
}

// Report summarizes one load run.
type Report struct {
	RunID   uuid.UUID
	Objects []ObjectResult
	Loaded  int
	Failed  int
}

// errConnBroken marks connection-level failures. Unlike data-level
// failures they abort the remaining objects of a run, because every
// later file would fail the same way on the shared connection.
var errConnBroken = errors.New("database connection broken")

// Loader loads CSV objects under a prefix into PostgreSQL tables.
type Loader struct {
	store storage.ObjectStore
	log   ridewise.Logger
}

// New creates a Loader.
func New(store storage.ObjectStore, log ridewise.Logger) *Loader {
	return &Loader{store: store, log: log}
}

// Load processes every .csv object under prefix in key order. Per
// object: fetch, parse, infer schema, CREATE TABLE IF NOT EXISTS, COPY
// the rows, commit. A failure rolls back that object's transaction,
// logs a diagnostic naming the table and moves on to the next object.
//
// Rows are appended on every run; loading the same objects twice
// doubles the row counts. A connection-level failure (transaction
// cannot even begin, or the context is cancelled) aborts the remaining
// objects; data-level failures are aggregated under
// ridewise.ErrLoadFailed.
func (l *Loader) Load(ctx context.Context, conn Conn, prefix string) (*Report, error) {
	objects, err := l.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing objects under %q: %w", prefix, err)
	}

	report := &Report{RunID: uuid.New()}
	seen := make(map[string]string) // table name -> first key

	for _, obj := range objects {
		if !strings.HasSuffix(strings.ToLower(obj.Key), ".csv") {
			l.log.Verbose("skipping non-CSV object %s", obj.Key)
			continue
		}

		table := schema.TableName(obj.Key)
		if first, dup := seen[table]; dup {
			l.log.Error("objects %s and %s both load into table %q; rows will be appended to the same table", first, obj.Key, table)
		} else {
			seen[table] = obj.Key
		}

		result := ObjectResult{Key: obj.Key, Table: table}
		rows, err := l.loadObject(ctx, conn, obj.Key, table)
		result.Rows = rows

		switch {
		case err == nil:
			report.Loaded++
			l.log.Info("Loaded %d rows into %s", rows, table)
		case errors.Is(err, errConnBroken) || ctx.Err() != nil:
			result.Err = err
			report.Failed++
			report.Objects = append(report.Objects, result)
			return report, fmt.Errorf("%w: aborted at %s: %v", ridewise.ErrConnectionFailed, obj.Key, err)
		default:
			result.Err = err
			report.Failed++
			l.log.Error("loading table %s from %s: %v", table, obj.Key, err)
		}

		report.Objects = append(report.Objects, result)
	}

	l.log.Info("Load complete: %d loaded, %d failed", report.Loaded, report.Failed)

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d objects failed", ridewise.ErrLoadFailed, report.Failed, report.Loaded+report.Failed)
	}
	return report, nil
}

// loadObject runs the per-file pipeline: fetch, parse, infer,
// ensure-table, copy, commit. Any error after Begin rolls back.
func (l *Loader) loadObject(ctx context.Context, conn Conn, key, table string) (int64, error) {
	data, err := l.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	header, records, err := parseCSV(data)
	if err != nil {
		return 0, fmt.Errorf("parsing CSV: %w", err)
	}

	tbl, err := schema.Infer(table, header, records)
	if err != nil {
		return 0, err
	}

	values, err := convertRows(tbl, records)
	if err != nil {
		return 0, err
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %v", errConnBroken, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, schema.CreateTableSQL(tbl)); err != nil {
		return 0, fmt.Errorf("ensuring table %s: %w", table, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{tbl.Name}, tbl.ColumnNames(), pgx.CopyFromRows(values))
	if err != nil {
		return 0, fmt.Errorf("copying rows into %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return copied, nil
}

// parseCSV splits raw CSV bytes into a header row and data records.
// All records must have the header's field count.
func parseCSV(data []byte) (header []string, records [][]string, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("no header row")
	}
	return all[0], all[1:], nil
}

// convertRows turns string records into typed COPY values. Empty cells
// become nil (SQL NULL).
func convertRows(tbl *schema.Table, records [][]string) ([][]interface{}, error) {
	values := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(tbl.Columns))
		for j, col := range tbl.Columns {
			v, err := schema.ParseValue(record[j], col.Type)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+1, col.Name, err)
			}
			row[j] = v
		}
		values[i] = row
	}
	return values, nil
}
