package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/target-inventory/internal/locations"
	"github.com/donaldgifford/target-inventory/internal/render"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func locationsCmd() *cobra.Command {
	var locType string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List Target locations",
		Long: "List every location in the Target location registry, optionally\n" +
			"restricted to one type (STORE, VENDOR, SELLER).",
		Example: `  target-inventory locations
  target-inventory locations --type VENDOR --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var locs []domain.Location
			switch strings.ToUpper(locType) {
			case "":
				locs, err = a.target.Locations(ctx)
			case "STORE":
				locs, err = a.target.Stores(ctx)
			case "VENDOR":
				locs, err = a.target.Vendors(ctx)
			case "SELLER", string(domain.LocationSeller):
				locs, err = a.target.Sellers(ctx)
			default:
				return fmt.Errorf("unknown location type %q (want STORE, VENDOR or SELLER)", locType)
			}
			if err != nil {
				return err
			}
			return renderLocations(locs)
		},
	}
	cmd.Flags().StringVar(&locType, "type", "", "location type (STORE, VENDOR, SELLER)")

	return cmd
}

func storesCmd() *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "stores [name]",
		Short: "List or find Target stores",
		Long: "List every store, or the stores whose name contains the given text.\n" +
			"A single numeric argument is looked up as a store id.",
		Example: `  target-inventory stores
  target-inventory stores "san francisco"
  target-inventory stores 3991`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) == 0 {
				locs, err := a.target.Stores(ctx)
				if err != nil {
					return err
				}
				return renderLocations(locs)
			}

			if isStoreID(args[0]) {
				store, err := a.target.StoreByID(ctx, args[0])
				if err != nil {
					return err
				}
				if store != nil {
					return renderLocations([]domain.Location{*store})
				}
			}

			var opts []locations.FindOption
			if caseSensitive {
				opts = append(opts, locations.CaseSensitive())
			}
			locs, err := a.target.FindStores(ctx, args[0], opts...)
			if err != nil {
				return err
			}
			return renderLocations(locs)
		},
	}
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match the store name case-sensitively")

	return cmd
}

func renderLocations(locs []domain.Location) error {
	if jsonOutput() {
		return render.JSON(os.Stdout, locs)
	}
	if len(locs) == 0 {
		fmt.Println("No locations found.")
		return nil
	}
	return render.Locations(os.Stdout, locs)
}

func isStoreID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
