// Package domain defines the core retail types returned by the Target
// inventory client: locations, products, prices, availability and reviews.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LocationType discriminates entries of the ship-locations list.
type LocationType string

// Location type constants. Other values are passed through unchanged.
const (
	LocationStore  LocationType = "STORE"
	LocationVendor LocationType = "VENDOR"
	LocationSeller LocationType = "SELLER_LOCATION"
)

// PricingContext selects whether prices and availability reflect the online
// catalog or a specific physical store.
type PricingContext string

// Pricing context constants.
const (
	PricingDigital PricingContext = "digital"
	PricingInStore PricingContext = "in_store"
)

// Location is a store, vendor or seller location from the registry.
type Location struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        LocationType    `json:"type"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	Region      string          `json:"region,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	Latitude    decimal.Decimal `json:"latitude"`
	Longitude   decimal.Decimal `json:"longitude"`
	Active      bool            `json:"active"`
	OBGDEnabled bool            `json:"obgd_enabled"`
	PhoneNumber string          `json:"phone_number,omitempty"`
}

// IsStore reports whether the location is a physical store.
func (l *Location) IsStore() bool {
	return l.Type == LocationStore
}

// Product is a catalog item as returned by search and availability queries.
type Product struct {
	TCIN          string         `json:"tcin"`
	DPCI          string         `json:"dpci,omitempty"`
	UPC           string         `json:"upc,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	State         string         `json:"state,omitempty"`
	ItemType      string         `json:"item_type,omitempty"`
	UnitOfMeasure string         `json:"unit_of_measure,omitempty"`
	Price         *Price         `json:"price,omitempty"`
	Online        *OnlineInfo    `json:"online,omitempty"`
	Promotions    []Promotion    `json:"promotions"`
	Features      []Feature      `json:"features"`
	Videos        []Video        `json:"videos"`
	Reviews       *ReviewSummary `json:"reviews,omitempty"`
	HasRecall     bool           `json:"has_recall"`
	CanBuy        bool           `json:"can_buy"`
	StorePickup   bool           `json:"store_pickup"`
	ShipFromStore bool           `json:"ship_from_store"`
	LaunchDate    *time.Time     `json:"launch_date,omitempty"`
}

// Price holds the formatted price strings exactly as the API reports them.
type Price struct {
	Price string `json:"price"`
	Type  string `json:"type"`
}

// OnlineInfo summarizes online purchase options.
type OnlineInfo struct {
	Availability  string `json:"availability"`
	InStorePickup string `json:"in_store_pickup"`
	FreeShipping  bool   `json:"free_shipping"`
}

// Promotion is a promotion applied to a product, optionally scoped to a location.
type Promotion struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id,omitempty"`
	Channel    string `json:"channel,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Feature is a name/value product attribute.
type Feature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// String joins the feature name and value with a space.
func (f Feature) String() string {
	return f.Name + " " + f.Value
}

// Video is a product video with its playable links.
type Video struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
}

// ReviewSummary aggregates guest reviews for a product.
type ReviewSummary struct {
	Count       int         `json:"count"`
	Average     float64     `json:"average"`
	Stars       map[int]int `json:"stars"`
	MostHelpful []Review    `json:"most_helpful"`
}

// Review is a single guest review.
type Review struct {
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	Rating        int       `json:"rating"`
	SubmittedAt   time.Time `json:"submitted_at"`
	FeedbackCount int       `json:"feedback_count"`
	Upvotes       int       `json:"upvotes"`
	Type          string    `json:"type,omitempty"`
}

// Availability is the fulfillment state of one product, online or at a store.
type Availability struct {
	Code                    string                 `json:"code,omitempty"`
	Status                  string                 `json:"status,omitempty"`
	LimitedQuantity         bool                   `json:"limited_quantity"`
	TotalQuantity           *int                   `json:"total_quantity,omitempty"`
	OnlineQuantity          *int                   `json:"online_quantity,omitempty"`
	InStoreQuantity         *int                   `json:"in_store_quantity,omitempty"`
	PreorderQuantity        *int                   `json:"preorder_quantity,omitempty"`
	Locations               []AvailabilityLocation `json:"locations"`
	ReleaseDate             *time.Time             `json:"release_date,omitempty"`
	AvailableToPurchaseDate *time.Time             `json:"available_to_purchase_date,omitempty"`
	BackorderStartDate      *time.Time             `json:"backorder_start_date,omitempty"`
	BackorderEndDate        *time.Time             `json:"backorder_end_date,omitempty"`
}

// String renders the availability as "code - status".
func (a *Availability) String() string {
	return fmt.Sprintf("%s - %s", a.Code, a.Status)
}

// AvailabilityLocation is a per-location inventory snapshot. Store is a
// lookup into the location registry and is nil when the location is unknown.
type AvailabilityLocation struct {
	LocationID    string          `json:"location_id"`
	OnHand        int             `json:"onhand"`
	Demand        decimal.Decimal `json:"demand"`
	HardDemand    decimal.Decimal `json:"hard_demand"`
	SoftDemand    decimal.Decimal `json:"soft_demand"`
	Reserve       decimal.Decimal `json:"reserve"`
	WalkInReserve decimal.Decimal `json:"walk_in_reserve"`
	Status        string          `json:"status,omitempty"`
	Store         *Location       `json:"store,omitempty"`
}

// OnlineProduct is the result of a digital-context availability query.
type OnlineProduct struct {
	Product
	Availability *Availability `json:"availability,omitempty"`
}

// StoreProduct is the result of a store-scoped availability query. The
// parent record carries its sellable variants in Variants; a variant has
// VariantOf set to the parent TCIN.
type StoreProduct struct {
	Product
	Availability *Availability  `json:"availability,omitempty"`
	Store        *Location      `json:"store,omitempty"`
	VariantOf    string         `json:"variant_of,omitempty"`
	Variants     []StoreProduct `json:"variants,omitempty"`
}

// IsVariant reports whether the record is a child variant of another product.
func (p *StoreProduct) IsVariant() bool {
	return p.VariantOf != ""
}

// Watch is a product tracked at a single store until the desired quantity is on hand.
type Watch struct {
	Name            string `json:"name"             yaml:"name"`
	TCIN            string `json:"tcin"             yaml:"tcin"`
	StoreID         string `json:"store_id"         yaml:"store_id"`
	DesiredQuantity int    `json:"desired_quantity" yaml:"desired_quantity"`
}

// StockCheck records the outcome of checking one watch.
type StockCheck struct {
	Watch       Watch     `json:"watch"`
	ProductName string    `json:"product_name,omitempty"`
	Price       string    `json:"price,omitempty"`
	StoreName   string    `json:"store_name,omitempty"`
	OnHand      int       `json:"onhand"`
	InStock     bool      `json:"in_stock"`
	Found       bool      `json:"found"`
	CheckedAt   time.Time `json:"checked_at"`
}
