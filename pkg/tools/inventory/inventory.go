// Package inventory demonstrates array handling with both wrapped and raw
// array structures: inventory items with nested specifications, and batch
// orders with nested item arrays.
package inventory

import (
	"context"
	"fmt"
	"log"
	"math"
)

// ProcessItems processes a wrapped array of inventory items, assigning
// sequential inventory identifiers and accumulating stock value. An empty
// batch yields a failed status rather than an error.
func ProcessItems(ctx context.Context, req ItemsRequest) (ItemsResult, error) {
	if len(req.Items) == 0 {
		return ItemsResult{
			Status:         "failed",
			Message:        "No items provided",
			ProcessedItems: []ProcessedItem{},
		}, nil
	}

	processed := make([]ProcessedItem, 0, len(req.Items))
	totalValue := 0.0
	totalQuantity := 0
	categories := make([]string, 0)
	seenCategories := make(map[string]bool)

	for idx, item := range req.Items {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		if !seenCategories[category] {
			seenCategories[category] = true
			categories = append(categories, category)
		}
		totalQuantity += item.Quantity

		itemValue := float64(item.Quantity) * item.Price
		totalValue += itemValue

		processed = append(processed, ProcessedItem{
			Name:        fallback(item.Name, "Unknown"),
			SKU:         item.SKU,
			Status:      "added",
			InventoryID: fmt.Sprintf("INV-2024-%03d", idx+1),
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			TotalValue:  itemValue,
			Category:    category,
			Specifications: Specifications{
				Brand:    fallback(item.Specifications.Brand, "N/A"),
				Model:    fallback(item.Specifications.Model, "N/A"),
				Warranty: fallback(item.Specifications.Warranty, "N/A"),
			},
		})

		log.Printf("Processed item: %s (SKU: %s) - %d units @ $%v", item.Name, item.SKU, item.Quantity, item.Price)
	}

	log.Printf("Inventory processing complete: %d items, total value: $%.2f", len(req.Items), totalValue)

	return ItemsResult{
		Status:         "success",
		Message:        fmt.Sprintf("Successfully processed %d inventory items", len(req.Items)),
		ProcessedItems: processed,
		TotalValue:     roundCents(totalValue),
		Summary: &ItemsSummary{
			TotalItems:    len(req.Items),
			TotalQuantity: totalQuantity,
			Categories:    categories,
		},
	}, nil
}

// ProcessBatchOrders processes a wrapped array of orders, each containing a
// nested wrapped items array, computing per-order totals and overall revenue.
func ProcessBatchOrders(ctx context.Context, req BatchRequest) (BatchResult, error) {
	if len(req.Orders) == 0 {
		return BatchResult{
			Status:          "failed",
			Message:         "No orders provided",
			ProcessedOrders: []ProcessedOrder{},
		}, nil
	}

	processed := make([]ProcessedOrder, 0, len(req.Orders))
	totalRevenue := 0.0

	for _, order := range req.Orders {
		orderTotal := 0.0
		items := make([]ProcessedOrderItem, 0, len(order.Items))

		for _, item := range order.Items {
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			itemTotal := float64(quantity) * item.UnitPrice
			orderTotal += itemTotal

			items = append(items, ProcessedOrderItem{
				ProductName: fallback(item.ProductName, "Unknown Product"),
				Quantity:    quantity,
				UnitPrice:   item.UnitPrice,
				ItemTotal:   itemTotal,
			})
		}

		totalRevenue += orderTotal
		processed = append(processed, ProcessedOrder{
			OrderID:      fallback(order.OrderID, "Unknown"),
			CustomerName: fallback(order.CustomerName, "Unknown Customer"),
			Status:       "processed",
			ItemsCount:   len(order.Items),
			Items:        items,
			TotalAmount:  roundCents(orderTotal),
		})

		log.Printf("Processed order: %s for %s - $%.2f", order.OrderID, order.CustomerName, orderTotal)
	}

	log.Printf("Batch processing complete: %d orders, total revenue: $%.2f", len(req.Orders), totalRevenue)

	return BatchResult{
		Status:          "success",
		Message:         fmt.Sprintf("Successfully processed %d batch orders", len(req.Orders)),
		ProcessedOrders: processed,
		Summary: &BatchSummary{
			TotalOrders:       len(req.Orders),
			TotalRevenue:      roundCents(totalRevenue),
			AverageOrderValue: roundCents(totalRevenue / float64(len(req.Orders))),
		},
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
