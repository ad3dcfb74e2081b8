package db

import (
	"fmt"
	"strings"
)

// Column types used in draw tables.
const (
	TypeText    = "TEXT"
	TypeInteger = "INTEGER"
)

// Schema names accepted on the command line.
const (
	SchemaLong = "long"
	SchemaWide = "wide"
)

// Column is one column of a draw table.
type Column struct {
	Name string
	Type string
}

// Schema describes the shape of a draw table.
type Schema struct {
	Name    string
	Columns []Column
}

// ForName returns the schema definition for "long" or "wide".
func ForName(name string) (Schema, error) {
	switch name {
	case SchemaLong:
		return Schema{
			Name: SchemaLong,
			Columns: []Column{
				{Name: "Date", Type: TypeText},
				{Name: "BallType", Type: TypeText},
				{Name: "BallNumber", Type: TypeInteger},
				{Name: "Position", Type: TypeText},
				{Name: "PowerPlay", Type: TypeInteger},
				{Name: "Year", Type: TypeInteger},
				{Name: "YearMonth", Type: TypeText},
			},
		}, nil
	case SchemaWide:
		return Schema{
			Name: SchemaWide,
			Columns: []Column{
				{Name: "Date", Type: TypeText},
				{Name: "Num1", Type: TypeInteger},
				{Name: "Num2", Type: TypeInteger},
				{Name: "Num3", Type: TypeInteger},
				{Name: "Num4", Type: TypeInteger},
				{Name: "Num5", Type: TypeInteger},
				{Name: "Powerball", Type: TypeInteger},
				{Name: "PowerPlay", Type: TypeInteger},
				{Name: "Year", Type: TypeInteger},
				{Name: "YearMonth", Type: TypeText},
			},
		}, nil
	default:
		return Schema{}, fmt.Errorf("unknown schema: %s (expected %s or %s)", name, SchemaLong, SchemaWide)
	}
}

// ColumnNames returns the column names in table order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// CreateTableSQL builds the CREATE TABLE statement for this schema.
func (s Schema) CreateTableSQL(table string) string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
}

// DropTableSQL builds the DROP TABLE statement for a replace load.
func DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(table))
}

// InsertSQL builds a parameterized INSERT for this schema. Postgres uses
// numbered placeholders; sqlite3 and duckdb use ?.
func (s Schema) InsertSQL(driver, table string) string {
	cols := make([]string, len(s.Columns))
	params := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = quoteIdent(c.Name)
		if driver == DriverPostgres {
			params[i] = fmt.Sprintf("$%d", i+1)
		} else {
			params[i] = "?"
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(cols, ", "), strings.Join(params, ", "))
}

// quoteIdent double-quotes an identifier so mixed-case column names survive
// postgres folding.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
