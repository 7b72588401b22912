package orders

// --- Argument Structs ---
// The request mirrors a realistic e-commerce order payload: customer details
// with a nested address and contact object, and an order with an items array
// whose products carry their own nested details and specifications.

// Address is a postal address shared by customer, shipping and billing fields.
type Address struct {
	Street  string `json:"street" jsonschema:"description=Street address line."`
	City    string `json:"city" jsonschema:"description=City name."`
	State   string `json:"state" jsonschema:"description=State or province."`
	Zipcode string `json:"zipcode" jsonschema:"description=Postal or ZIP code."`
	Country string `json:"country" jsonschema:"description=Country name or code."`
}

// Contact holds the customer's phone numbers.
type Contact struct {
	Phone  string `json:"phone" jsonschema:"description=Primary phone number."`
	Mobile string `json:"mobile" jsonschema:"description=Mobile phone number."`
}

// Customer identifies who placed the order.
type Customer struct {
	Name    string  `json:"name" jsonschema:"required,description=The customer's full name."`
	Email   string  `json:"email" jsonschema:"description=The customer's email address."`
	Address Address `json:"address" jsonschema:"description=The customer's home address."`
	Contact Contact `json:"contact" jsonschema:"description=The customer's contact numbers."`
}

// ProductSpecifications carries physical product attributes.
type ProductSpecifications struct {
	Weight     string `json:"weight" jsonschema:"description=Product weight, e.g. '1.5 kg'."`
	Dimensions string `json:"dimensions" jsonschema:"description=Product dimensions."`
	Material   string `json:"material" jsonschema:"description=Product material."`
}

// ProductDetails nests a description and specifications under a product.
type ProductDetails struct {
	Description    string                `json:"description" jsonschema:"description=Product description."`
	Specifications ProductSpecifications `json:"specifications" jsonschema:"description=Physical specifications of the product."`
}

// Product describes an orderable product.
type Product struct {
	ProductID string         `json:"product_id" jsonschema:"description=Unique product identifier."`
	Name      string         `json:"name" jsonschema:"description=Product name."`
	Details   ProductDetails `json:"details" jsonschema:"description=Nested product details."`
}

// OrderItem is one line of an order.
type OrderItem struct {
	Product  Product `json:"product" jsonschema:"required,description=The product being ordered."`
	Quantity int     `json:"quantity" jsonschema:"description=Quantity ordered, defaults to 1."`
	Price    float64 `json:"price" jsonschema:"description=Unit price."`
}

// Order groups the purchased items with shipping and billing addresses.
type Order struct {
	OrderID         string      `json:"order_id" jsonschema:"description=Order identifier."`
	OrderDate       string      `json:"order_date" jsonschema:"description=Date the order was placed."`
	Items           []OrderItem `json:"items" jsonschema:"description=The ordered items."`
	ShippingAddress Address     `json:"shipping_address" jsonschema:"description=Shipping address, defaults to the customer address."`
	BillingAddress  Address     `json:"billing_address" jsonschema:"description=Billing address, defaults to the customer address."`
}

// OrderRequest defines the arguments for the process_customer_order tool.
type OrderRequest struct {
	Customer Customer `json:"customer" jsonschema:"required,description=The customer placing the order."`
	Order    Order    `json:"order" jsonschema:"required,description=The order details."`
}

// --- Response Structs ---

// ItemSummary is the formatted view of a single order line.
type ItemSummary struct {
	ProductName    string  `json:"product_name"`
	ProductID      string  `json:"product_id"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Subtotal       float64 `json:"subtotal"`
	Specifications string  `json:"specifications,omitempty"` // Only present when the product carries specs
}

// OrderConfirmation is the user-friendly confirmation returned to the caller.
type OrderConfirmation struct {
	CustomerName        string        `json:"customer_name"`
	CustomerEmail       string        `json:"customer_email"`
	CustomerAddress     string        `json:"customer_address"`
	Phone               string        `json:"phone"`
	Mobile              string        `json:"mobile"`
	OrderID             string        `json:"order_id"`
	OrderDate           string        `json:"order_date"`
	Items               []ItemSummary `json:"items"`
	TotalItems          int           `json:"total_items"`
	TotalAmount         float64       `json:"total_amount"`
	ShippingAddress     string        `json:"shipping_address"`
	BillingAddress      string        `json:"billing_address"`
	ConfirmationMessage string        `json:"confirmation_message"`
	OrderSummary        string        `json:"order_summary"`
}
