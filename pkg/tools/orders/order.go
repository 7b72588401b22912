// Package orders processes customer orders with nested customer, address and
// product data, returning a clean, formatted order confirmation.
package orders

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ProcessOrder formats a customer order into a confirmation summary.
// Missing fields fall back to safe defaults ("Unknown", "Not provided")
// rather than erroring; shipping and billing addresses default to the
// customer address when absent.
func ProcessOrder(ctx context.Context, req OrderRequest) (OrderConfirmation, error) {
	log.Println("Executing Process Order for:", req.Customer.Name)

	result := OrderConfirmation{
		CustomerName:  fallback(req.Customer.Name, "Unknown"),
		CustomerEmail: fallback(req.Customer.Email, "Not provided"),
		Phone:         fallback(req.Customer.Contact.Phone, "Not provided"),
		Mobile:        fallback(req.Customer.Contact.Mobile, "Not provided"),
		OrderID:       fallback(req.Order.OrderID, "Unknown"),
		OrderDate:     fallback(req.Order.OrderDate, "Not specified"),
	}

	result.CustomerAddress = fallback(FormatAddress(req.Customer.Address), "Not provided")

	result.Items = make([]ItemSummary, 0, len(req.Order.Items))
	result.TotalItems = len(req.Order.Items)
	for _, item := range req.Order.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}

		summary := ItemSummary{
			ProductName: fallback(item.Product.Name, "Unknown Product"),
			ProductID:   item.Product.ProductID,
			Description: item.Product.Details.Description,
			Quantity:    quantity,
			Price:       item.Price,
			Subtotal:    float64(quantity) * item.Price,
		}

		specs := item.Product.Details.Specifications
		if specs.Weight != "" || specs.Dimensions != "" || specs.Material != "" {
			summary.Specifications = fmt.Sprintf("%s, %s, %s", specs.Weight, specs.Dimensions, specs.Material)
		}

		result.Items = append(result.Items, summary)
		result.TotalAmount += summary.Subtotal
	}

	result.ShippingAddress = fallback(FormatAddress(req.Order.ShippingAddress), result.CustomerAddress)
	result.BillingAddress = fallback(FormatAddress(req.Order.BillingAddress), result.CustomerAddress)

	result.ConfirmationMessage = fmt.Sprintf("Order %s confirmed for %s", result.OrderID, result.CustomerName)
	result.OrderSummary = fmt.Sprintf("%d item(s), Total: $%.2f", result.TotalItems, result.TotalAmount)

	return result, nil
}

// FormatAddress joins the non-empty address parts in the fixed order
// street, city, state, zipcode, country. An empty address yields "".
func FormatAddress(a Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Zipcode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
