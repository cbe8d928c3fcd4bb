package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zecke/rostergen/app"
	"github.com/zecke/rostergen/config"
	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rostergen",
	Short: "On-call roster generator",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	sched, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	printSchedule(cmd, sched)
	return nil
}

// printSchedule renders the roster as text, one line per period and role.
func printSchedule(cmd *cobra.Command, sched *model.Schedule) {
	cmd.Printf("run %s: %s, objective %.0f, solved in %s\n",
		sched.RunID, sched.Status, sched.Objective, sched.SolveDuration)
	for _, a := range sched.Assignments {
		cmd.Printf("%-9s shift #%d: %s\n", a.Role, a.Period, a.Person)
	}
	for _, l := range sched.Loads {
		cmd.Printf("load %s: %d primary, %d secondary\n", l.Person, l.Primary, l.Secondary)
	}
	cmd.Printf("load spread: mean %.2f stddev %.2f\n", sched.LoadMean, sched.LoadStdDev)
}
