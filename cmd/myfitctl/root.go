package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "myfitctl",
	Short: "myfitctl manages the MyFit database",
	Long:  "myfitctl applies schema migrations and loads seed data (food catalog, diet protocols) into the MyFit database.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dbConfig() *repository.PGCfg {
	cfg := config.New()
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
