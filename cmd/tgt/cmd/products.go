package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/target-inventory/internal/api/client"
	"github.com/donaldgifford/target-inventory/internal/render"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func searchCmd() *cobra.Command {
	var params apiclient.SearchParams

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search Target products",
		Example: `  tgt search "lego star wars"
  tgt search switch --store 3991 --store-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = args[0]
			resp, err := newClient().Search(cmd.Context(), &params)
			if err != nil {
				return err
			}
			return emit(resp.Products, func(p []domain.Product) error {
				if len(p) == 0 {
					fmt.Println("No products found.")
					return nil
				}
				return render.Products(os.Stdout, p)
			})
		},
	}
	cmd.Flags().StringVar(&params.StoreID, "store", "", "price results at this store id")
	cmd.Flags().BoolVar(&params.StoreSearch, "store-only", false, "only return items sold at --store")
	cmd.Flags().StringVar(&params.SortBy, "sort", "", "sort order")
	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based result page")

	return cmd
}

func availabilityCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "availability <tcin>",
		Short: "Show online or in-store availability",
		Example: `  tgt availability 81114477
  tgt availability 81114477 --store 3991`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			if storeID == "" {
				p, err := c.OnlineAvailability(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return emit(p, func(p *domain.OnlineProduct) error {
					return render.OnlineProduct(os.Stdout, p)
				})
			}

			p, err := c.StoreAvailability(cmd.Context(), args[0], storeID)
			if err != nil {
				return err
			}
			return emit(p, func(p *domain.StoreProduct) error {
				return render.StoreProduct(os.Stdout, p)
			})
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "store id for in-store availability")

	return cmd
}

func nearbyCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:     "nearby <tcin>",
		Short:   "Show available-to-promise inventory around a store",
		Example: `  tgt nearby 81114477 --store 3991`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newClient().NearbyAvailability(cmd.Context(), args[0], storeID)
			if err != nil {
				return err
			}
			return emit(a, func(a *domain.Availability) error {
				return render.Availability(os.Stdout, a)
			})
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "store id to search around")

	return cmd
}
