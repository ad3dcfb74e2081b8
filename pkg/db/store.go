package db

import (
	"database/sql"
	"fmt"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// CreateTable creates the draw table for the given schema. When replace is
// true any existing table is dropped first.
func CreateTable(db DBExecutor, table string, s Schema, replace bool) error {
	if replace {
		if _, err := db.Exec(DropTableSQL(table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	if _, err := db.Exec(s.CreateTableSQL(table)); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(db DBExecutor, table string) (int64, error) {
	var n int64
	err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(table))).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
