package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/render"
)

func searchCmd() *cobra.Command {
	var (
		storeID     string
		storeSearch bool
		sortBy      string
		page        int
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search Target products",
		Long: "Search the Target catalog. Prices come from the default pricing store\n" +
			"unless --store is given; --store-only also drops items the store does not sell.",
		Example: `  target-inventory search "lego star wars"
  target-inventory search switch --store 3991 --store-only --sort price_low`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if storeSearch && storeID == "" {
				return fmt.Errorf("--store-only requires --store")
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			req := redsky.SearchRequest{
				Keyword:     args[0],
				StoreSearch: storeSearch,
				SortBy:      sortBy,
				Page:        page,
			}
			if storeID != "" {
				store, err := a.target.StoreByID(ctx, storeID)
				if err != nil {
					return err
				}
				if store == nil {
					return fmt.Errorf("store %s not found", storeID)
				}
				req.Store = store
			}

			products, err := a.target.Search(ctx, req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return render.JSON(os.Stdout, products)
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return render.Products(os.Stdout, products)
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "price results at this store id")
	cmd.Flags().BoolVar(&storeSearch, "store-only", false, "only return items sold at --store")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (relevance, price_low, price_high, ...)")
	cmd.Flags().IntVar(&page, "page", 1, "1-based result page")

	return cmd
}
