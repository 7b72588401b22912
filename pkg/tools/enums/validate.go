// Package enums validates enum values at multiple nesting levels: account
// status and type at the root, customer type one level down, address country
// two levels down, and contact preference three levels down. Validation
// failures are reported as structured results naming the offending field and
// the allowed set, never as transport errors.
package enums

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
)

// Validate checks a single enum value against its allowed set.
func Validate(value string, allowed []string, field string) (bool, string) {
	if slices.Contains(allowed, value) {
		return true, fmt.Sprintf("%s=%s (valid)", field, value)
	}
	return false, fmt.Sprintf("%s=%s (invalid - allowed: %s)", field, value, strings.Join(allowed, ", "))
}

// UpdateAccountStatus validates the root-level status and type enums and
// confirms the account update when both pass.
func UpdateAccountStatus(ctx context.Context, args AccountStatusArgs) (AccountStatusResult, error) {
	log.Println("Executing Update Account Status for:", args.AccountID)

	result := AccountStatusResult{
		Success:   true,
		AccountID: fallback(args.AccountID, "Unknown"),
		Status:    args.Status,
		Type:      args.Type,
		UpdatedAt: timestamp(),
	}

	statusValid, _ := Validate(args.Status, AccountStatuses, "status")
	typeValid, _ := Validate(args.Type, AccountTypes, "type")

	if !statusValid || !typeValid {
		result.Success = false
		result.Error = "VALIDATION_ERROR"
		result.Message = "Invalid enum value provided"

		if !statusValid {
			result.Field = "status"
			result.ProvidedValue = args.Status
			result.AllowedValues = AccountStatuses
		} else {
			result.Field = "type"
			result.ProvidedValue = args.Type
			result.AllowedValues = AccountTypes
		}
		return result, nil
	}

	result.Message = fmt.Sprintf("Account %s updated successfully to %s status", args.AccountID, args.Status)
	result.AccountType = args.Type
	return result, nil
}

// CreateCustomerProfile validates the nested customer.type and
// customer.address.country enums, formatting the profile when both pass.
func CreateCustomerProfile(ctx context.Context, args CustomerProfileArgs) (CustomerProfileResult, error) {
	log.Println("Executing Create Customer Profile for:", args.CustomerID)

	customer := args.Customer
	result := CustomerProfileResult{
		Success:       true,
		CustomerID:    fallback(args.CustomerID, "Unknown"),
		CustomerName:  fallback(customer.Name, "Unknown"),
		CustomerEmail: fallback(customer.Email, "Not provided"),
		CustomerType:  customer.Type,
		CreatedAt:     timestamp(),
	}

	typeValid, _ := Validate(customer.Type, CustomerTypes, "type")
	countryValid, _ := Validate(customer.Address.Country, Countries, "country")

	if !typeValid || !countryValid {
		result.Success = false
		result.Error = "VALIDATION_ERROR"
		result.Message = "Invalid enum value in request"

		if !typeValid {
			result.Field = "customer.type"
			result.ProvidedValue = customer.Type
			result.AllowedValues = CustomerTypes
		} else {
			result.Field = "customer.address.country"
			result.ProvidedValue = customer.Address.Country
			result.AllowedValues = Countries
		}
		return result, nil
	}

	result.Address = formatAddress(customer.Address)
	result.Country = customer.Address.Country
	result.Phone = fallback(customer.Contact.Phone, "Not provided")
	result.Mobile = fallback(customer.Contact.Mobile, "Not provided")
	result.Message = fmt.Sprintf("Customer profile created successfully for %s", customer.Name)
	return result, nil
}

// CreateMultiLevelProfile validates enums at all four nesting levels,
// accumulating every failure instead of stopping at the first. The contact
// preference is only validated when provided.
func CreateMultiLevelProfile(ctx context.Context, args MultiLevelArgs) (MultiLevelResult, error) {
	log.Println("Executing Create Multi-Level Profile for:", args.ProfileID)

	customer := args.Customer
	result := MultiLevelResult{
		Success:       true,
		ProfileID:     fallback(args.ProfileID, "Unknown"),
		Status:        args.Status,
		CustomerName:  fallback(customer.Name, "Unknown"),
		CustomerEmail: fallback(customer.Email, "Not provided"),
		CustomerType:  customer.Type,
		CreatedAt:     timestamp(),
	}

	var failures []ValidationFailure

	if ok, _ := Validate(args.Status, AccountStatuses, "status"); !ok {
		failures = append(failures, ValidationFailure{Field: "status", ProvidedValue: args.Status, AllowedValues: AccountStatuses})
	}
	if ok, _ := Validate(customer.Type, CustomerTypes, "customer_type"); !ok {
		failures = append(failures, ValidationFailure{Field: "customer.type", ProvidedValue: customer.Type, AllowedValues: CustomerTypes})
	}
	if ok, _ := Validate(customer.Address.Country, Countries, "address_country"); !ok {
		failures = append(failures, ValidationFailure{Field: "customer.address.country", ProvidedValue: customer.Address.Country, AllowedValues: Countries})
	}
	if preference := customer.Contact.Preference; preference != "" {
		if ok, _ := Validate(preference, ContactPreferences, "contact_preference"); !ok {
			failures = append(failures, ValidationFailure{Field: "customer.contact.preference", ProvidedValue: preference, AllowedValues: ContactPreferences})
		}
	}

	if len(failures) > 0 {
		result.Success = false
		result.Error = "VALIDATION_ERROR"
		result.Message = "One or more validation failures detected"
		result.ValidationFailures = failures
		return result, nil
	}

	result.Address = formatAddress(customer.Address)
	result.Country = customer.Address.Country
	result.Phone = fallback(customer.Contact.Phone, "Not provided")
	result.ContactPreference = fallback(customer.Contact.Preference, "Not specified")
	result.Timezone = fallback(customer.Contact.Timezone, "Not specified")
	result.Message = fmt.Sprintf("Profile %s created successfully for %s", args.ProfileID, customer.Name)
	return result, nil
}

func formatAddress(a Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Zipcode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
