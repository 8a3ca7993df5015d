package redsky_test

const searchResponse = `{
	"products": [
		{
			"tcin": "81114477",
			"dcpi": "087-10-1234",
			"upc": 673419340304,
			"title": "LEGO Star Wars Millennium Falcon 75257",
			"description": "Build the iconic ship.",
			"itemState": "READY_FOR_LAUNCH",
			"itemType": "Building Sets",
			"buyUnitOfMeasure": "Each",
			"price": {"formatted_current_price": "$159.99", "formatted_current_price_type": "reg"},
			"onlineInfo": {"availabilityCode": "IN_STOCK", "pickUpInStoreStatus": "AVAILABLE", "freeShipping": true},
			"promotions": [
				{"id": "PROMO-1", "applied_location_id": 3991, "channel": "STORE", "message": "Save 20%"}
			],
			"features": [
				{"name": "Pieces:", "value": 1351},
				{"name": "Age:", "value": "9 Years and Up"}
			],
			"videos": [{"title": "Build video", "links": ["https://example.test/v.mp4"]}],
			"reviews": {
				"count": 412,
				"average": 4.8,
				"stars": {"1": 3, "2": 1, "3": 6, "4": 40, "5": 362},
				"mostHelpful": [
					{"title": "Great", "text": "Took all weekend.", "rating": 5,
					 "submissionTime": "2023-07-04T18:22:05+0000", "feedbackCount": 12, "upvotes": 10, "type": "REVIEW"}
				]
			},
			"hasRecall": false,
			"canBuy": true,
			"storePickup": "Y",
			"shipFromStore": true,
			"launchDate": "2019-10-01T00:00:00.000Z"
		},
		{"tcin": "123", "title": "Widget"},
		{"tcin": "456", "title": "Gadget", "dpci": "001-02-0003"}
	]
}`

const onlineResponse = `{
	"data": {
		"product": {
			"tcin": "81114477",
			"title": "LEGO Star Wars Millennium Falcon 75257",
			"price": {"formatted_current_price": "$159.99", "formatted_current_price_type": "reg"},
			"fulfillment": {
				"availability": "AVAILABLE",
				"availability_status": "IN_STOCK",
				"limited_quantity_enabled": false,
				"available_to_promise_quantity": 230,
				"online_available_to_promise_quantity": 120,
				"stores_available_to_promise_quantity": 110.0,
				"release_date": "2019-10-01T00:00:00.000Z",
				"locations": [
					{"location_id": 3991, "onhand_quantity": 4, "location_demand_sum": "1.5",
					 "location_hard_demand_sum": 1, "location_soft_demand_sum": 0.5,
					 "product_location_reserve": 0, "product_location_pickup_walkin_reserve": 2,
					 "availability_status": "IN_STOCK"},
					{"location_id": "999", "onhand_quantity": 7, "location_demand_sum": 2,
					 "availability_status": "LIMITED_STOCK"}
				]
			}
		}
	}
}`

const storeResponse = `{
	"data": {
		"product": {
			"tcin": "A",
			"title": "Crew Socks",
			"fulfillment": {"availability_status": "IN_STOCK", "stores_available_to_promise_quantity": 9},
			"children": [
				{
					"tcin": "B",
					"title": "Crew Socks - Small",
					"price": {"formatted_current_price": "$8.00", "formatted_current_price_type": "reg"},
					"fulfillment": {
						"availability_status": "IN_STOCK",
						"stores_available_to_promise_quantity": 4,
						"locations": [{"location_id": "3991", "onhand_quantity": 4}]
					}
				},
				{"tcin": "C", "title": "Crew Socks - Large"}
			]
		}
	}
}`

const nearbyResponse = `{
	"products": [
		{
			"availability": "AVAILABLE",
			"availability_status": "IN_STOCK",
			"available_to_promise_quantity": 18,
			"locations": [
				{"location_id": "3991", "onhand_quantity": 5, "availability_status": "IN_STOCK"},
				{"location_id": "2468", "onhand_quantity": 13, "availability_status": "IN_STOCK"}
			]
		},
		{"availability_status": "OUT_OF_STOCK"}
	]
}`

const shipLocations = `[
	{"location_id": "3991", "location_name": "San Francisco Central", "location_type": "STORE"},
	{"location_id": "2468", "location_name": "Minneapolis Nicollet Mall", "location_type": "STORE"},
	{"location_id": "552", "location_name": "Acme Vendor", "location_type": "VENDOR"}
]`
