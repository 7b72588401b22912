package inventory

// --- Argument Structs ---
// Items and orders arrive as wrapped arrays: the array lives under an object
// property ("items", "orders"), which is the structure agent-facing OpenAPI
// schemas handle most reliably. Raw (top-level) arrays are supported at the
// HTTP boundary by wrapping them into these request structs before dispatch.

// Specifications carries the nested attributes of one inventory item.
type Specifications struct {
	Brand    string `json:"brand" jsonschema:"description=Item brand."`
	Model    string `json:"model" jsonschema:"description=Item model."`
	Warranty string `json:"warranty" jsonschema:"description=Warranty period."`
}

// Item is one inventory entry.
type Item struct {
	Name           string         `json:"name" jsonschema:"required,description=Item name."`
	SKU            string         `json:"sku" jsonschema:"description=Stock keeping unit."`
	Quantity       int            `json:"quantity" jsonschema:"description=Units in stock."`
	Price          float64        `json:"price" jsonschema:"description=Unit price."`
	Category       string         `json:"category" jsonschema:"description=Item category."`
	Specifications Specifications `json:"specifications" jsonschema:"description=Nested item specifications."`
}

// ItemsRequest defines the arguments for the process_inventory_items tool
// (wrapped array form).
type ItemsRequest struct {
	Items []Item `json:"items" jsonschema:"required,description=The inventory items to process."`
}

// BatchOrderItem is one line inside a batch order.
type BatchOrderItem struct {
	ProductName string  `json:"product_name" jsonschema:"required,description=Product name."`
	Quantity    int     `json:"quantity" jsonschema:"description=Quantity ordered, defaults to 1."`
	UnitPrice   float64 `json:"unit_price" jsonschema:"description=Unit price."`
}

// BatchOrder is one order in a batch, containing a nested wrapped items array.
type BatchOrder struct {
	OrderID      string           `json:"order_id" jsonschema:"description=Order identifier."`
	CustomerName string           `json:"customer_name" jsonschema:"description=Customer name."`
	Items        []BatchOrderItem `json:"items" jsonschema:"required,description=The ordered items."`
}

// BatchRequest defines the arguments for the process_batch_orders tool.
type BatchRequest struct {
	Orders []BatchOrder `json:"orders" jsonschema:"required,description=The batch orders to process."`
}

// --- Response Structs ---

// ProcessedItem is the result of processing one inventory item.
type ProcessedItem struct {
	Name           string         `json:"name"`
	SKU            string         `json:"sku"`
	Status         string         `json:"status"`
	InventoryID    string         `json:"inventory_id"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unit_price"`
	TotalValue     float64        `json:"total_value"`
	Category       string         `json:"category"`
	Specifications Specifications `json:"specifications"`
}

// ItemsSummary aggregates an item batch.
type ItemsSummary struct {
	TotalItems    int      `json:"total_items"`
	TotalQuantity int      `json:"total_quantity"`
	Categories    []string `json:"categories"`
}

// ItemsResult is the response for process_inventory_items.
type ItemsResult struct {
	Status         string          `json:"status"`
	Message        string          `json:"message"`
	ProcessedItems []ProcessedItem `json:"processed_items"`
	TotalValue     float64         `json:"total_value"`
	Summary        *ItemsSummary   `json:"summary,omitempty"`
}

// ProcessedOrderItem is one formatted line of a processed batch order.
type ProcessedOrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ItemTotal   float64 `json:"item_total"`
}

// ProcessedOrder is one processed batch order.
type ProcessedOrder struct {
	OrderID      string               `json:"order_id"`
	CustomerName string               `json:"customer_name"`
	Status       string               `json:"status"`
	ItemsCount   int                  `json:"items_count"`
	Items        []ProcessedOrderItem `json:"items"`
	TotalAmount  float64              `json:"total_amount"`
}

// BatchSummary aggregates a batch of orders.
type BatchSummary struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// BatchResult is the response for process_batch_orders.
type BatchResult struct {
	Status          string           `json:"status"`
	Message         string           `json:"message"`
	ProcessedOrders []ProcessedOrder `json:"processed_orders"`
	Summary         *BatchSummary    `json:"summary,omitempty"`
}
