package redsky

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/donaldgifford/target-inventory/internal/jsonx"
	"github.com/donaldgifford/target-inventory/internal/locations"
	"github.com/donaldgifford/target-inventory/internal/metrics"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// converter maps raw API structs into domain types. lookup resolves
// availability location ids to registry stores and may be nil.
type converter struct {
	lookup locations.Lookup
}

// toProduct maps a raw product record. Absent optional objects map to nil
// and absent lists to empty slices.
func toProduct(w *wireProduct) (domain.Product, error) {
	dpci := string(w.DPCI)
	if dpci == "" {
		dpci = string(w.DCPI)
	}

	p := domain.Product{
		TCIN:          string(w.TCIN),
		DPCI:          dpci,
		UPC:           string(w.UPC),
		Name:          w.Title,
		Description:   w.Description,
		State:         w.ItemState,
		ItemType:      w.ItemType,
		UnitOfMeasure: w.BuyUnitOfMeasure,
		Price:         toPrice(w.Price),
		Online:        toOnlineInfo(w.OnlineInfo),
		Promotions:    lo.Map(w.Promotions, func(p wirePromotion, _ int) domain.Promotion { return toPromotion(p) }),
		Features:      lo.Map(w.Features, func(f wireFeature, _ int) domain.Feature { return toFeature(f) }),
		Videos:        lo.Map(w.Videos, func(v wireVideo, _ int) domain.Video { return toVideo(v) }),
		HasRecall:     bool(w.HasRecall),
		CanBuy:        bool(w.CanBuy),
		StorePickup:   bool(w.StorePickup),
		ShipFromStore: bool(w.ShipFromStore),
	}

	reviews, err := toReviewSummary(w.Reviews)
	if err != nil {
		return domain.Product{}, err
	}
	p.Reviews = reviews

	p.LaunchDate, err = parseOptionalDate("launchDate", w.LaunchDate, AvailabilityLayout)
	if err != nil {
		return domain.Product{}, err
	}

	return p, nil
}

func toPrice(w *wirePrice) *domain.Price {
	if w == nil {
		return nil
	}
	return &domain.Price{
		Price: w.FormattedCurrentPrice,
		Type:  w.FormattedCurrentPriceType,
	}
}

func toOnlineInfo(w *wireOnlineInfo) *domain.OnlineInfo {
	if w == nil {
		return nil
	}
	return &domain.OnlineInfo{
		Availability:  w.AvailabilityCode,
		InStorePickup: w.PickUpInStoreStatus,
		FreeShipping:  bool(w.FreeShipping),
	}
}

func toPromotion(w wirePromotion) domain.Promotion {
	return domain.Promotion{
		ID:         string(w.ID),
		LocationID: string(w.AppliedLocationID),
		Channel:    w.Channel,
		Message:    w.Message,
	}
}

func toFeature(w wireFeature) domain.Feature {
	return domain.Feature{Name: w.Name, Value: string(w.Value)}
}

func toVideo(w wireVideo) domain.Video {
	links := w.Links
	if links == nil {
		links = []string{}
	}
	return domain.Video{Title: w.Title, Links: links}
}

func toReviewSummary(w *wireReviews) (*domain.ReviewSummary, error) {
	if w == nil {
		return nil, nil
	}

	var stars map[int]int
	if w.Stars != nil {
		stars = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}
	for k, v := range w.Stars {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 || n > 5 {
			return nil, fmt.Errorf("review star bucket %q: %w", k, domain.ErrSchemaMismatch)
		}
		stars[n] = int(v.IntPart())
	}

	helpful := make([]domain.Review, 0, len(w.MostHelpful))
	for i := range w.MostHelpful {
		r, err := toReview(&w.MostHelpful[i])
		if err != nil {
			return nil, err
		}
		helpful = append(helpful, r)
	}

	average, _ := w.Average.Float64()
	return &domain.ReviewSummary{
		Count:       int(w.Count.IntPart()),
		Average:     average,
		Stars:       stars,
		MostHelpful: helpful,
	}, nil
}

func toReview(w *wireReview) (domain.Review, error) {
	r := domain.Review{
		Title:         w.Title,
		Text:          w.Text,
		Rating:        int(w.Rating.IntPart()),
		FeedbackCount: int(w.FeedbackCount.IntPart()),
		Upvotes:       int(w.Upvotes.IntPart()),
		Type:          w.Type,
	}
	if w.SubmissionTime != "" {
		t, err := ParseDate("submissionTime", w.SubmissionTime, ReviewLayout)
		if err != nil {
			return domain.Review{}, err
		}
		r.SubmittedAt = t
	}
	return r, nil
}

func quantity(d *jsonx.Decimal) *int {
	if d == nil {
		return nil
	}
	return lo.ToPtr(int(d.IntPart()))
}

// toAvailability maps a fulfillment record, resolving each location's store.
func (c converter) toAvailability(w *wireAvailability) (*domain.Availability, error) {
	if w == nil {
		return nil, nil
	}

	a := &domain.Availability{
		Code:             w.Availability,
		Status:           w.AvailabilityStatus,
		LimitedQuantity:  bool(w.LimitedQuantityEnabled),
		TotalQuantity:    quantity(w.AvailableToPromiseQuantity),
		OnlineQuantity:   quantity(w.OnlineAvailableToPromiseQuantity),
		InStoreQuantity:  quantity(w.StoresAvailableToPromiseQuantity),
		PreorderQuantity: quantity(w.PreOrderAvailableToPromiseQuantity),
		Locations:        make([]domain.AvailabilityLocation, 0, len(w.Locations)),
	}

	dates := []struct {
		field string
		value string
		dst   **time.Time
	}{
		{"release_date", w.ReleaseDate, &a.ReleaseDate},
		{"available_to_purchase_date_time", w.AvailableToPurchaseDateTime, &a.AvailableToPurchaseDate},
		{"backorder_start_date", w.BackorderStartDate, &a.BackorderStartDate},
		{"backorder_end_date", w.BackorderEndDate, &a.BackorderEndDate},
	}
	for _, d := range dates {
		t, err := parseOptionalDate(d.field, d.value, AvailabilityLayout)
		if err != nil {
			return nil, err
		}
		*d.dst = t
	}

	for i := range w.Locations {
		loc, err := c.toAvailabilityLocation(&w.Locations[i])
		if err != nil {
			return nil, err
		}
		a.Locations = append(a.Locations, loc)
	}

	return a, nil
}

func (c converter) toAvailabilityLocation(w *wireAvailabilityLocation) (domain.AvailabilityLocation, error) {
	id := string(w.LocationID)
	if id == "" {
		return domain.AvailabilityLocation{}, fmt.Errorf("availability location_id: %w", domain.ErrMissingIdentity)
	}

	loc := domain.AvailabilityLocation{
		LocationID:    id,
		OnHand:        int(w.OnhandQuantity.IntPart()),
		Demand:        w.LocationDemandSum.Decimal,
		HardDemand:    w.LocationHardDemandSum.Decimal,
		SoftDemand:    w.LocationSoftDemandSum.Decimal,
		Reserve:       w.ProductLocationReserve.Decimal,
		WalkInReserve: w.ProductLocationPickupWalkinReserve.Decimal,
		Status:        w.AvailabilityStatus,
	}

	if c.lookup != nil {
		loc.Store = c.lookup.StoreByID(id)
	}
	if loc.Store == nil {
		metrics.ResolutionMissesTotal.WithLabelValues("location").Inc()
	}

	return loc, nil
}

func (c converter) toOnlineProduct(w *wireProduct) (*domain.OnlineProduct, error) {
	p, err := toProduct(w)
	if err != nil {
		return nil, err
	}
	a, err := c.toAvailability(w.Fulfillment)
	if err != nil {
		return nil, err
	}
	return &domain.OnlineProduct{Product: p, Availability: a}, nil
}

// toStoreProduct maps a store-scoped product and its children. Children
// carry the parent TCIN in VariantOf.
func (c converter) toStoreProduct(w *wireProduct, store *domain.Location) (*domain.StoreProduct, error) {
	parent, err := c.storeRecord(w, store)
	if err != nil {
		return nil, err
	}

	parent.Variants = make([]domain.StoreProduct, 0, len(w.Children))
	for i := range w.Children {
		child, err := c.storeRecord(&w.Children[i], store)
		if err != nil {
			return nil, err
		}
		child.VariantOf = parent.TCIN
		parent.Variants = append(parent.Variants, child)
	}

	return &parent, nil
}

func (c converter) storeRecord(w *wireProduct, store *domain.Location) (domain.StoreProduct, error) {
	p, err := toProduct(w)
	if err != nil {
		return domain.StoreProduct{}, err
	}
	a, err := c.toAvailability(w.Fulfillment)
	if err != nil {
		return domain.StoreProduct{}, err
	}
	return domain.StoreProduct{Product: p, Availability: a, Store: store}, nil
}

// hasLocations reports whether any fulfillment in w, or its children, lists
// per-location inventory that needs resolving.
func hasLocations(w *wireProduct) bool {
	if w.Fulfillment != nil && len(w.Fulfillment.Locations) > 0 {
		return true
	}
	return lo.ContainsBy(w.Children, func(c wireProduct) bool { return hasLocations(&c) })
}
