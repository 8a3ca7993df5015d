package redsky

import "github.com/donaldgifford/target-inventory/internal/jsonx"

// Raw Target API response structs. These mirror the JSON payloads and are
// mapped into domain types by the functions in convert.go.

type searchEnvelope struct {
	// Pointer so a missing key can be told apart from an empty list.
	Products *[]wireProduct `json:"products"`
}

type productEnvelope struct {
	Data *struct {
		Product *wireProduct `json:"product"`
	} `json:"data"`
}

type nearbyEnvelope struct {
	Products []wireAvailability `json:"products"`
}

type wireProduct struct {
	TCIN             jsonx.String      `json:"tcin"`
	DPCI             jsonx.String      `json:"dpci"`
	DCPI             jsonx.String      `json:"dcpi"`
	UPC              jsonx.String      `json:"upc"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	ItemState        string            `json:"itemState"`
	ItemType         string            `json:"itemType"`
	BuyUnitOfMeasure string            `json:"buyUnitOfMeasure"`
	Price            *wirePrice        `json:"price"`
	OnlineInfo       *wireOnlineInfo   `json:"onlineInfo"`
	Promotions       []wirePromotion   `json:"promotions"`
	Features         []wireFeature     `json:"features"`
	Videos           []wireVideo       `json:"videos"`
	Reviews          *wireReviews      `json:"reviews"`
	HasRecall        jsonx.Bool        `json:"hasRecall"`
	CanBuy           jsonx.Bool        `json:"canBuy"`
	StorePickup      jsonx.Bool        `json:"storePickup"`
	ShipFromStore    jsonx.Bool        `json:"shipFromStore"`
	LaunchDate       string            `json:"launchDate"`
	Fulfillment      *wireAvailability `json:"fulfillment"`
	Children         []wireProduct     `json:"children"`
}

type wirePrice struct {
	FormattedCurrentPrice     string `json:"formatted_current_price"`
	FormattedCurrentPriceType string `json:"formatted_current_price_type"`
}

type wireOnlineInfo struct {
	AvailabilityCode    string     `json:"availabilityCode"`
	PickUpInStoreStatus string     `json:"pickUpInStoreStatus"`
	FreeShipping        jsonx.Bool `json:"freeShipping"`
}

type wirePromotion struct {
	ID                jsonx.String `json:"id"`
	AppliedLocationID jsonx.String `json:"applied_location_id"`
	Channel           string       `json:"channel"`
	Message           string       `json:"message"`
}

type wireFeature struct {
	Name  string       `json:"name"`
	Value jsonx.String `json:"value"`
}

type wireVideo struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
}

type wireReviews struct {
	Count       jsonx.Decimal            `json:"count"`
	Average     jsonx.Decimal            `json:"average"`
	Stars       map[string]jsonx.Decimal `json:"stars"`
	MostHelpful []wireReview             `json:"mostHelpful"`
}

type wireReview struct {
	Title          string        `json:"title"`
	Text           string        `json:"text"`
	Rating         jsonx.Decimal `json:"rating"`
	SubmissionTime string        `json:"submissionTime"`
	FeedbackCount  jsonx.Decimal `json:"feedbackCount"`
	Upvotes        jsonx.Decimal `json:"upvotes"`
	Type           string        `json:"type"`
}

type wireAvailability struct {
	Availability                       string                     `json:"availability"`
	AvailabilityStatus                 string                     `json:"availability_status"`
	LimitedQuantityEnabled             jsonx.Bool                 `json:"limited_quantity_enabled"`
	AvailableToPromiseQuantity         *jsonx.Decimal             `json:"available_to_promise_quantity"`
	OnlineAvailableToPromiseQuantity   *jsonx.Decimal             `json:"online_available_to_promise_quantity"`
	StoresAvailableToPromiseQuantity   *jsonx.Decimal             `json:"stores_available_to_promise_quantity"`
	PreOrderAvailableToPromiseQuantity *jsonx.Decimal             `json:"pre_order_available_to_promise_quantity"`
	ReleaseDate                        string                     `json:"release_date"`
	AvailableToPurchaseDateTime        string                     `json:"available_to_purchase_date_time"`
	BackorderStartDate                 string                     `json:"backorder_start_date"`
	BackorderEndDate                   string                     `json:"backorder_end_date"`
	Locations                          []wireAvailabilityLocation `json:"locations"`
}

type wireAvailabilityLocation struct {
	LocationID                         jsonx.String  `json:"location_id"`
	OnhandQuantity                     jsonx.Decimal `json:"onhand_quantity"`
	LocationDemandSum                  jsonx.Decimal `json:"location_demand_sum"`
	LocationHardDemandSum              jsonx.Decimal `json:"location_hard_demand_sum"`
	LocationSoftDemandSum              jsonx.Decimal `json:"location_soft_demand_sum"`
	ProductLocationReserve             jsonx.Decimal `json:"product_location_reserve"`
	ProductLocationPickupWalkinReserve jsonx.Decimal `json:"product_location_pickup_walkin_reserve"`
	AvailabilityStatus                 string        `json:"availability_status"`
}
