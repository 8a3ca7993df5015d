package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/target-inventory/internal/render"
	"github.com/donaldgifford/target-inventory/internal/tracker"
)

func watchCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check watched products for store stock",
		Long: "Check every watch.items entry against its store and alert when the on-hand\n" +
			"quantity reaches desired_quantity. Runs one cycle immediately, then every\n" +
			"watch.interval until interrupted. --once prints the results of a single cycle.",
		Example: `  target-inventory watch --once
  target-inventory watch --config /etc/target-inventory/config.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if len(a.cfg.Watch.Items) == 0 {
				return fmt.Errorf("no watch.items configured in %s", cmd.Flag("config").Value)
			}

			trk := tracker.New(a.target, newNotifier(&a.cfg.Notifications, a.log), a.cfg.Watch.Items,
				tracker.WithLogger(a.log), tracker.WithStagger(a.cfg.Watch.Stagger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			checks, err := trk.RunCycle(ctx)
			if err != nil {
				return err
			}
			if once {
				if jsonOutput() {
					return render.JSON(os.Stdout, checks)
				}
				return render.StockChecks(os.Stdout, checks)
			}

			sched, err := tracker.NewScheduler(trk, a.cfg.Watch.Interval, a.log)
			if err != nil {
				return fmt.Errorf("creating scheduler: %w", err)
			}
			sched.Start()
			a.log.Info("watching", "items", len(a.cfg.Watch.Items), "next_run", sched.NextRun())

			<-ctx.Done()
			<-sched.Stop().Done()
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single cycle and print the results")

	return cmd
}

