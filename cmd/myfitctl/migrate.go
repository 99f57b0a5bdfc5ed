package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	sslMode       string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(goose.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(goose.Down)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(goose.Status)
	},
}

func withMigrations(run func(db *sql.DB, dir string) error) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	conn, err := sql.Open("postgres", migrationDSN(dbConfig().ConnString(), sslMode))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()
	return run(conn, migrationsDir)
}

func migrationDSN(connString, mode string) string {
	if mode == "" {
		return connString
	}
	return connString + "?sslmode=" + mode
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "./migrations", "Directory with goose migrations")
	migrateCmd.PersistentFlags().StringVar(&sslMode, "sslmode", "disable", "sslmode passed to the postgres driver, empty to omit")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}
