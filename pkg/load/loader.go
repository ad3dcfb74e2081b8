// Package load inserts cleaned draw CSVs into database tables.
package load

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/db"
	"github.com/japaniel/powerball/pkg/draws"
)

// MissingColumnsError reports expected columns absent from a CSV header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csv missing expected columns: %s", strings.Join(e.Columns, ", "))
}

// Loader inserts one cleaned CSV into a database table. Values are read as
// text and coerced per column type: INTEGER columns go through the draw
// null-int rules, TEXT columns are stored verbatim.
type Loader struct {
	DB        *sql.DB
	Driver    string
	Table     string
	Schema    db.Schema
	Replace   bool
	BatchSize int
	Logger    *zap.Logger
}

// NewLoader builds a Loader for the named schema with the default table and
// batch settings.
func NewLoader(conn *sql.DB, driver, schemaName string) (*Loader, error) {
	s, err := db.ForName(schemaName)
	if err != nil {
		return nil, err
	}
	return &Loader{
		DB:        conn,
		Driver:    driver,
		Table:     "draws",
		Schema:    s,
		BatchSize: 500,
		Logger:    zap.NewNop(),
	}, nil
}

// Load reads the CSV at path and inserts every data row into the table in
// file order. It returns the number of rows inserted.
func (l *Loader) Load(ctx context.Context, path string) (int64, error) {
	rows, err := l.readRows(path)
	if err != nil {
		return 0, err
	}

	if err := db.CreateTable(l.DB, l.Table, l.Schema, l.Replace); err != nil {
		return 0, err
	}

	insertSQL := l.Schema.InsertSQL(l.Driver, l.Table)
	bw := NewBatchWriter(l.DB, l.BatchSize, 0)

	for _, row := range rows {
		select {
		case <-ctx.Done():
			bw.Close()
			return 0, ctx.Err()
		default:
		}
		args := row
		if err := bw.Submit(func(_ context.Context, tx *sql.Tx) error {
			_, err := tx.Exec(insertSQL, args...)
			return err
		}); err != nil {
			bw.Close()
			return 0, err
		}
	}

	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}

	l.Logger.Info("loaded csv",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
		zap.String("table", l.Table),
		zap.String("schema", l.Schema.Name))
	return int64(len(rows)), nil
}

// readRows reads the CSV, validates the header against the schema and
// returns insert argument slices in schema column order. Columns beyond the
// schema are ignored.
func (l *Loader) readRows(path string) ([][]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &MissingColumnsError{Columns: l.Schema.ColumnNames()}
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	var missing []string
	for _, name := range l.Schema.ColumnNames() {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([][]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		args := make([]interface{}, len(l.Schema.Columns))
		for i, col := range l.Schema.Columns {
			raw := record[index[col.Name]]
			if col.Type == db.TypeInteger {
				args[i] = draws.ParseNullInt(raw)
			} else {
				args[i] = raw
			}
		}
		rows = append(rows, args)
	}
	return rows, nil
}
