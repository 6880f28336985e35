package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Podcast Catalog API.

This command provides subcommands to apply, rollback, and check the status
of database migrations. Migrations are embedded in the binary, one set per
database driver.

Available subcommands:
  up      - Apply all pending migrations
  down    - Rollback applied migrations
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This command will apply all migrations that have not yet been applied
to the database, bringing the schema up to date.`,
	RunE: runMigrateUp,
}

// migrateDownCmd rolls back migrations
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback applied migrations",
	Long: `Rollback the last applied migration.

Use --steps to undo more than one, or --steps 0 to drop the whole schema.
The command asks for confirmation unless --yes is given.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

This command shows the schema version recorded in the database and
whether the last migration left it dirty.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to rollback (0 = all)")
	migrateDownCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	db, err := openDatabase(false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(appLogger); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	steps, _ := cmd.Flags().GetInt("steps")
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		what := fmt.Sprintf("%d migration(s)", steps)
		if steps <= 0 {
			what = "all migrations"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "WARNING: This will rollback %s. Continue? (y/N): ", what)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if r := strings.TrimSpace(response); r != "y" && r != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Migration rollback cancelled")
			return nil
		}
	}

	if err := loadConfig(cmd); err != nil {
		return err
	}
	db, err := openDatabase(false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateDown(appLogger, steps); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	db, err := openDatabase(false)
	if err != nil {
		return err
	}
	defer db.Close()

	status, err := db.MigrationStatus()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Driver:          %s\n", db.Driver())
	if !status.Applied {
		fmt.Fprintln(out, "Current version: 0 (no migrations applied)")
		return nil
	}
	fmt.Fprintf(out, "Current version: %d\n", status.Version)
	fmt.Fprintf(out, "Dirty:           %t\n", status.Dirty)
	return nil
}
