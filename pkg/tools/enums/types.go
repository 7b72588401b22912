package enums

// Allowed enum values at each nesting level.
var (
	AccountStatuses    = []string{"active", "inactive"}
	AccountTypes       = []string{"personal", "business"}
	CustomerTypes      = []string{"individual", "corporate"}
	Countries          = []string{"US", "CA", "UK"}
	ContactPreferences = []string{"email", "phone", "sms"}
)

// --- Argument Structs ---

// AccountStatusArgs defines the arguments for the update_account_status tool.
// Both enum fields live at the root level.
type AccountStatusArgs struct {
	AccountID string `json:"account_id" jsonschema:"required,description=The account identifier."`
	Status    string `json:"status" jsonschema:"required,enum=active,enum=inactive,description=The new account status."`
	Type      string `json:"type" jsonschema:"required,enum=personal,enum=business,description=The account type."`
}

// Address nests the country enum two levels deep.
type Address struct {
	Street  string `json:"street" jsonschema:"description=Street address line."`
	City    string `json:"city" jsonschema:"description=City name."`
	State   string `json:"state" jsonschema:"description=State or province."`
	Zipcode string `json:"zipcode" jsonschema:"description=Postal or ZIP code."`
	Country string `json:"country" jsonschema:"enum=US,enum=CA,enum=UK,description=Country code."`
}

// Contact nests the preference enum three levels deep.
type Contact struct {
	Phone      string `json:"phone" jsonschema:"description=Primary phone number."`
	Mobile     string `json:"mobile" jsonschema:"description=Mobile phone number."`
	Preference string `json:"preference" jsonschema:"enum=email,enum=phone,enum=sms,description=Preferred contact channel."`
	Timezone   string `json:"timezone" jsonschema:"description=Contact timezone."`
}

// Customer nests the customer type enum one level deep.
type Customer struct {
	Name    string  `json:"name" jsonschema:"required,description=The customer's full name."`
	Email   string  `json:"email" jsonschema:"description=Email address."`
	Type    string  `json:"type" jsonschema:"enum=individual,enum=corporate,description=The customer type."`
	Address Address `json:"address" jsonschema:"description=The customer's address."`
	Contact Contact `json:"contact" jsonschema:"description=The customer's contact details."`
}

// CustomerProfileArgs defines the arguments for the create_customer_profile tool.
type CustomerProfileArgs struct {
	CustomerID string   `json:"customer_id" jsonschema:"required,description=The customer identifier."`
	Customer   Customer `json:"customer" jsonschema:"required,description=The customer profile with nested enum fields."`
}

// MultiLevelArgs defines the arguments for the create_multi_level_profile
// tool, with enums at four nesting levels: status (root), customer.type,
// customer.address.country, customer.contact.preference.
type MultiLevelArgs struct {
	ProfileID string   `json:"profile_id" jsonschema:"required,description=The profile identifier."`
	Status    string   `json:"status" jsonschema:"required,enum=active,enum=inactive,description=The profile status."`
	Customer  Customer `json:"customer" jsonschema:"required,description=The customer profile with nested enum fields."`
}

// --- Response Structs ---

// ValidationFailure describes one rejected enum value.
type ValidationFailure struct {
	Field         string   `json:"field"`
	ProvidedValue string   `json:"provided_value"`
	AllowedValues []string `json:"allowed_values"`
}

// AccountStatusResult is the response for update_account_status.
type AccountStatusResult struct {
	Success     bool   `json:"success"`
	AccountID   string `json:"account_id"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	UpdatedAt   string `json:"updated_at"`
	Message     string `json:"message"`
	AccountType string `json:"account_type,omitempty"`
	Error       string `json:"error,omitempty"`
	// Populated on the first validation failure only.
	Field         string   `json:"field,omitempty"`
	ProvidedValue string   `json:"provided_value,omitempty"`
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// CustomerProfileResult is the response for create_customer_profile.
type CustomerProfileResult struct {
	Success       bool   `json:"success"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerType  string `json:"customer_type"`
	CreatedAt     string `json:"created_at"`
	Message       string `json:"message"`
	Address       string `json:"address,omitempty"`
	Country       string `json:"country,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Error         string `json:"error,omitempty"`
	// Populated on the first validation failure only.
	Field         string   `json:"field,omitempty"`
	ProvidedValue string   `json:"provided_value,omitempty"`
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// MultiLevelResult is the response for create_multi_level_profile. Unlike the
// single-failure results above, it accumulates every failing level.
type MultiLevelResult struct {
	Success            bool                `json:"success"`
	ProfileID          string              `json:"profile_id"`
	Status             string              `json:"status"`
	CustomerName       string              `json:"customer_name"`
	CustomerEmail      string              `json:"customer_email"`
	CustomerType       string              `json:"customer_type"`
	CreatedAt          string              `json:"created_at"`
	Message            string              `json:"message"`
	Address            string              `json:"address,omitempty"`
	Country            string              `json:"country,omitempty"`
	Phone              string              `json:"phone,omitempty"`
	ContactPreference  string              `json:"contact_preference,omitempty"`
	Timezone           string              `json:"timezone,omitempty"`
	Error              string              `json:"error,omitempty"`
	ValidationFailures []ValidationFailure `json:"validation_failures,omitempty"`
}
