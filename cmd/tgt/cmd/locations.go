package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/target-inventory/internal/api/client"
	"github.com/donaldgifford/target-inventory/internal/render"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func locationsCmd() *cobra.Command {
	var locType string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List Target locations",
		Example: `  tgt locations
  tgt locations --type VENDOR`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Locations(cmd.Context(), locType)
			if err != nil {
				return err
			}
			return emit(resp.Locations, printLocations)
		},
	}
	cmd.Flags().StringVar(&locType, "type", "", "location type (STORE, VENDOR, SELLER)")

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Reload the server's location registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().RefreshLocations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Location registry refreshed: %d locations.\n", n)
			return nil
		},
	})

	return cmd
}

func storesCmd() *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "stores [name]",
		Short: "List or find stores",
		Example: `  tgt stores
  tgt stores minneapolis
  tgt stores get 3991`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			resp, err := newClient().FindStores(cmd.Context(), query, caseSensitive)
			if err != nil {
				return err
			}
			return emit(resp.Locations, printLocations)
		},
	}
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match the store name case-sensitively")

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a single store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newClient().Store(cmd.Context(), args[0])
			if apiclient.IsNotFound(err) {
				return fmt.Errorf("store %s not found", args[0])
			}
			if err != nil {
				return err
			}
			return emit([]domain.Location{*store}, printLocations)
		},
	})

	return cmd
}

func printLocations(locs []domain.Location) error {
	if len(locs) == 0 {
		fmt.Println("No locations found.")
		return nil
	}
	return render.Locations(os.Stdout, locs)
}
