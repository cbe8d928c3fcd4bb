package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zecke/rostergen/config"
	"github.com/zecke/rostergen/core/schedule"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration without solving",
	RunE:  check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	available := schedule.FilterAvailable(cfg.Rotation.Persons)
	if len(available) < 2 {
		return fmt.Errorf("%w: need at least 2 available people, have %d",
			schedule.ErrUnsatisfiableRoster, len(available))
	}

	cmd.Printf("configuration ok: %d of %d people available, horizon %d, lookback %d\n",
		len(available), len(cfg.Rotation.Persons), cfg.Schedule.Horizon, cfg.Schedule.Lookback)
	return nil
}
