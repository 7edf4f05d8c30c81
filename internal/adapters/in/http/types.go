package http

import "time"

// Request and response bodies. Field names follow the OpenAPI document.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	NewRestaurant struct {
		Name string `json:"name"`
	}

	RestaurantCreated struct {
		Id string `json:"id"`
	}

	Created struct {
		Id int64 `json:"id"`
	}

	CreatedLineItems struct {
		Ids []int64 `json:"ids"`
	}

	MatchResult struct {
		Matched  int64 `json:"matched"`
		Modified int64 `json:"modified"`
	}

	Toggled struct {
		LineItemId int64 `json:"lineItemId"`
		Previous   bool  `json:"previous"`
		IsReady    bool  `json:"isReady"`
	}

	NewMenuItem struct {
		Name       string `json:"name"`
		Category   string `json:"category"`
		PriceCents int64  `json:"priceCents"`
	}

	MenuItem struct {
		Id         int64  `json:"id"`
		Name       string `json:"name"`
		Category   string `json:"category"`
		PriceCents int64  `json:"priceCents"`
	}

	NewTable struct {
		Number int `json:"number"`
	}

	Table struct {
		Id      int64  `json:"id"`
		Number  int    `json:"number"`
		OrderId *int64 `json:"orderId,omitempty"`
	}

	Modification struct {
		Op         string `json:"op"`
		Ingredient string `json:"ingredient"`
	}

	NewLineItem struct {
		MenuItemId int64          `json:"menuItemId"`
		Note       string         `json:"note"`
		Mods       []Modification `json:"mods"`
	}

	NewLineItems struct {
		LineItems []NewLineItem `json:"lineItems"`
	}

	NewOrder struct {
		Channel   string        `json:"channel"`
		Number    int           `json:"number"`
		TableId   *int64        `json:"tableId"`
		LineItems []NewLineItem `json:"lineItems"`
	}

	PatchLineItem struct {
		Id         *int64         `json:"id"`
		MenuItemId int64          `json:"menuItemId"`
		Note       string         `json:"note"`
		Mods       []Modification `json:"mods"`
		IsReady    bool           `json:"isReady"`
	}

	OrderPatch struct {
		Channel   string          `json:"channel"`
		Number    int             `json:"number"`
		TableId   *int64          `json:"tableId"`
		Part      int             `json:"part"`
		Served    bool            `json:"served"`
		Date      *time.Time      `json:"date,omitempty"`
		LineItems []PatchLineItem `json:"lineItems"`
	}

	LineItem struct {
		Id         int64          `json:"id"`
		MenuItemId int64          `json:"menuItemId"`
		Note       string         `json:"note"`
		Mods       []Modification `json:"mods"`
		IsReady    bool           `json:"isReady"`
		Part       int            `json:"part"`
		PriceCents int64          `json:"priceCents"`
	}

	Order struct {
		Id           int64      `json:"id"`
		RestaurantId string     `json:"restaurantId"`
		Channel      string     `json:"channel"`
		Number       int        `json:"number"`
		TableId      *int64     `json:"tableId,omitempty"`
		CreatedAt    time.Time  `json:"createdAt"`
		Part         int        `json:"part"`
		Served       bool       `json:"served"`
		Status       string     `json:"status"`
		TotalCents   int64      `json:"totalCents"`
		LineItems    []LineItem `json:"lineItems"`
	}

	KDSRow struct {
		MenuItemId int64          `json:"menuItemId"`
		Name       string         `json:"name"`
		Mods       []Modification `json:"mods"`
		Note       string         `json:"note"`
		IsReady    bool           `json:"isReady"`
		Quantity   int            `json:"quantity"`
	}

	KDSOrder struct {
		Id        int64     `json:"id"`
		Channel   string    `json:"channel"`
		Number    int       `json:"number"`
		TableId   *int64    `json:"tableId,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
		Part      int       `json:"part"`
		Status    string    `json:"status"`
		Rows      []KDSRow  `json:"rows"`
	}

	ActiveLineItem struct {
		LineItemId  int64          `json:"lineItemId"`
		OrderId     int64          `json:"orderId"`
		OrderNumber int            `json:"orderNumber"`
		Channel     string         `json:"channel"`
		TableId     *int64         `json:"tableId,omitempty"`
		CreatedAt   time.Time      `json:"createdAt"`
		MenuItemId  int64          `json:"menuItemId"`
		Name        string         `json:"name"`
		Note        string         `json:"note"`
		Mods        []Modification `json:"mods"`
		IsReady     bool           `json:"isReady"`
		Part        int            `json:"part"`
	}
)

// ListOrdersParams are the query parameters of GET /api/:restaurantId/orders.
type ListOrdersParams struct {
	Status *string
	Sort   *string
	ForKDS *bool
}
