package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"medguardian/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Storage == config.StorageMemory {
			return fmt.Errorf("migrate needs --storage sqlite or postgres")
		}

		db, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		results, err := db.Migrate(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "no pending migrations")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(out, "applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
		}
		return nil
	},
}
