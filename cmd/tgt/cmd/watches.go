package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/target-inventory/internal/api/client"
	"github.com/donaldgifford/target-inventory/internal/render"
)

func watchesCmd() *cobra.Command {
	watchRoot := &cobra.Command{
		Use:   "watches",
		Short: "Inspect and run stock watches",
		Long: "Stock watches are configured on the server under watch.items. These\n" +
			"commands show their latest results and trigger a cycle on demand.",
	}

	watchRoot.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List watches with their last results",
			Example: `  tgt watches list
  tgt watches list --output json`,
			RunE: func(cmd *cobra.Command, _ []string) error {
				status, err := newClient().ListWatches(cmd.Context())
				if err != nil {
					return err
				}
				return emit(status, func(s *apiclient.WatchStatus) error {
					if len(s.Watches) == 0 {
						fmt.Println("No watches configured.")
						return nil
					}
					if len(s.LastChecks) == 0 {
						fmt.Printf("%d watches configured, not checked yet.\n", len(s.Watches))
						return nil
					}
					return render.StockChecks(os.Stdout, s.LastChecks)
				})
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Run a watch cycle now",
			Long:  "Run one watch cycle on the server. Alerts fire for watches that moved into stock.",
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := newClient().CheckWatches(cmd.Context())
				if err != nil {
					return err
				}
				return emit(res, func(r *apiclient.CheckResult) error {
					if err := render.StockChecks(os.Stdout, r.Checks); err != nil {
						return err
					}
					fmt.Printf("\n%d of %d watches in stock.\n", r.InStock, len(r.Checks))
					return nil
				})
			},
		},
	)

	return watchRoot
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's Target API quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			return emit(q, func(q *apiclient.Quota) error {
				if q.Remaining < 0 {
					fmt.Printf("Used %d calls today, no daily limit.\n", q.DailyUsed)
					return nil
				}
				fmt.Printf("Used %d of %d calls, %d remaining, resets %s.\n",
					q.DailyUsed, q.DailyLimit, q.Remaining, q.ResetAt.Local().Format("2006-01-02 15:04"))
				return nil
			})
		},
	}
}
