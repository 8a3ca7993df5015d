package redsky

import (
	"fmt"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// DefaultPricingStoreID is the store used for digital pricing when no store
// is given.
const DefaultPricingStoreID = "1928"

// ResolveVariant returns the record in parent's family whose TCIN equals
// tcin: the parent itself, or else the first matching variant in order.
// It returns nil, nil when nothing matches.
func ResolveVariant(tcin string, parent *domain.StoreProduct) (*domain.StoreProduct, error) {
	if tcin == "" {
		return nil, fmt.Errorf("resolving variant: requested tcin: %w", domain.ErrMissingIdentity)
	}
	if parent == nil {
		return nil, nil
	}
	if parent.TCIN == "" {
		return nil, fmt.Errorf("resolving variant: parent tcin: %w", domain.ErrMissingIdentity)
	}
	if parent.TCIN == tcin {
		return parent, nil
	}

	for i := range parent.Variants {
		v := &parent.Variants[i]
		if v.TCIN == "" {
			return nil, fmt.Errorf("resolving variant: child %d of %s tcin: %w", i, parent.TCIN, domain.ErrMissingIdentity)
		}
		if v.TCIN == tcin {
			return v, nil
		}
	}
	return nil, nil
}

// pricing selects the pricing context and pricing store for a query.
func pricing(store *domain.Location, defaultStoreID string) (domain.PricingContext, string) {
	if store == nil {
		return domain.PricingDigital, defaultStoreID
	}
	return domain.PricingInStore, store.ID
}
