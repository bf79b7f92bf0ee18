package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"medguardian/internal/config"
	"medguardian/internal/router"
)

var (
	statsFlagOwner string
	statsFlagDays  int
	statsFlagJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show adherence statistics for a user",
	Long: `Show adherence for one user over the last N days.

Examples:
  medguardian stats --owner user-1
  medguardian stats --owner user-1 --days 30 --json`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFlagOwner, "owner", "", "owner user id")
	statsCmd.Flags().IntVar(&statsFlagDays, "days", 7, "window in days")
	statsCmd.Flags().BoolVar(&statsFlagJSON, "json", false, "print JSON")
	_ = statsCmd.MarkFlagRequired("owner")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage == config.StorageMemory {
		return fmt.Errorf("stats needs --storage sqlite or postgres")
	}

	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	svcs := router.NewServices(router.Options{DB: db, Logger: newLogger(cfg)})
	st, err := svcs.Adherence.ComputeAdherence(cmd.Context(), statsFlagOwner, statsFlagDays)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statsFlagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"owner":          statsFlagOwner,
			"days":           st.Days,
			"total_expected": st.TotalExpected,
			"total_taken":    st.TotalTaken,
			"adherence_rate": st.AdherenceRate,
		})
	}

	fmt.Fprintf(out, "owner:     %s\n", statsFlagOwner)
	fmt.Fprintf(out, "days:      %d\n", st.Days)
	fmt.Fprintf(out, "expected:  %d\n", st.TotalExpected)
	fmt.Fprintf(out, "taken:     %d\n", st.TotalTaken)
	fmt.Fprintf(out, "adherence: %d%%\n", st.AdherenceRate)
	return nil
}
