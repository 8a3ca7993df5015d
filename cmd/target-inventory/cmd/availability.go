package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/render"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func availabilityCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "availability <tcin>",
		Short: "Show online or in-store availability for a product",
		Long: "Without --store, shows online availability and per-location inventory.\n" +
			"With --store, shows the store-scoped record for the product or the\n" +
			"variant matching tcin.",
		Example: `  target-inventory availability 81114477
  target-inventory availability 81114477 --store 3991`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			tcin := args[0]

			if storeID == "" {
				p, err := a.target.OnlineAvailability(ctx, tcin)
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("no availability data for %s", tcin)
				}
				if jsonOutput() {
					return render.JSON(os.Stdout, p)
				}
				return render.OnlineProduct(os.Stdout, p)
			}

			store, err := a.target.StoreByID(ctx, storeID)
			if err != nil {
				return err
			}
			if store == nil {
				store = &domain.Location{ID: storeID, Type: domain.LocationStore}
			}

			p, err := a.target.StoreAvailability(ctx, tcin, *store)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no product or variant %s at store %s", tcin, storeID)
			}
			if jsonOutput() {
				return render.JSON(os.Stdout, p)
			}
			return render.StoreProduct(os.Stdout, p)
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "store id for in-store availability")

	return cmd
}

func nearbyCmd() *cobra.Command {
	var req redsky.NearbyRequest

	cmd := &cobra.Command{
		Use:   "nearby <tcin>",
		Short: "Show available-to-promise inventory around a store",
		Example: `  target-inventory nearby 81114477 --store 3991`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			if req.NearbyStore == "" {
				req.NearbyStore = a.cfg.Target.DefaultStoreID
			}

			av, err := a.target.NearbyAvailability(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if av == nil {
				return fmt.Errorf("no nearby availability for %s", args[0])
			}
			if jsonOutput() {
				return render.JSON(os.Stdout, av)
			}

			return render.Availability(os.Stdout, av)
		},
	}
	cmd.Flags().StringVar(&req.NearbyStore, "store", "", "store id to search around (default target.default_store_id)")
	cmd.Flags().StringVar(&req.InventoryType, "inventory-type", "", "inventory type (default ALL)")
	cmd.Flags().StringVar(&req.Multichannel, "multichannel", "", "multichannel option (default ALL)")

	return cmd
}
