package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/db"
	"github.com/japaniel/powerball/pkg/load"
)

func newLoadCmd(logger *zap.Logger) *cobra.Command {
	var csvPath, dsn, driver, table, schema string
	var replace bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a cleaned CSV into a database table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				if driver == db.DriverPostgres {
					dsn = os.Getenv("DATABASE_URL")
					if dsn == "" {
						return fmt.Errorf("postgres requires --db or DATABASE_URL")
					}
				} else {
					dsn = "powerball.db"
				}
			}

			conn, err := db.Open(driver, dsn)
			if err != nil {
				return err
			}
			defer conn.Close()

			loader, err := load.NewLoader(conn, driver, schema)
			if err != nil {
				return err
			}
			loader.Table = table
			loader.Replace = replace
			loader.Logger = logger

			n, err := loader.Load(cmd.Context(), csvPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d rows into %s:%s (%s).\n", n, dsn, table, schema)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the cleaned CSV")
	cmd.Flags().StringVar(&dsn, "db", "", "database path or connection string")
	cmd.Flags().StringVar(&driver, "driver", db.DriverSQLite, "database driver: sqlite3, postgres or duckdb")
	cmd.Flags().StringVar(&table, "table", "draws", "destination table name")
	cmd.Flags().StringVar(&schema, "schema", db.SchemaLong, "table schema: long or wide")
	cmd.Flags().BoolVar(&replace, "replace", false, "drop and recreate the table before loading")
	cmd.MarkFlagRequired("csv")
	return cmd
}
