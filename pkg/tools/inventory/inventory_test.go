package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessItems(t *testing.T) {
	req := ItemsRequest{
		Items: []Item{
			{
				Name:     "Wireless Mouse",
				SKU:      "WM-2024-001",
				Quantity: 50,
				Price:    29.99,
				Category: "Electronics",
				Specifications: Specifications{
					Brand:    "TechCorp",
					Model:    "TM-100",
					Warranty: "2 years",
				},
			},
			{
				Name:     "Desk Lamp",
				SKU:      "DL-2024-002",
				Quantity: 10,
				Price:    15.50,
			},
			{
				Name:     "USB Hub",
				SKU:      "UH-2024-003",
				Quantity: 5,
				Price:    12.00,
				Category: "Electronics",
			},
		},
	}

	result, err := ProcessItems(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Successfully processed 3 inventory items", result.Message)
	require.Len(t, result.ProcessedItems, 3)

	mouse := result.ProcessedItems[0]
	assert.Equal(t, "INV-2024-001", mouse.InventoryID)
	assert.Equal(t, "added", mouse.Status)
	assert.Equal(t, "Electronics", mouse.Category)
	assert.InDelta(t, 1499.50, mouse.TotalValue, 0.001)
	assert.Equal(t, "TechCorp", mouse.Specifications.Brand)

	lamp := result.ProcessedItems[1]
	assert.Equal(t, "INV-2024-002", lamp.InventoryID)
	assert.Equal(t, "Uncategorized", lamp.Category)
	assert.Equal(t, "N/A", lamp.Specifications.Brand)
	assert.Equal(t, "N/A", lamp.Specifications.Model)
	assert.Equal(t, "N/A", lamp.Specifications.Warranty)

	assert.InDelta(t, 1714.50, result.TotalValue, 0.001)
	require.NotNil(t, result.Summary)
	assert.Equal(t, 3, result.Summary.TotalItems)
	assert.Equal(t, 65, result.Summary.TotalQuantity)
	// Categories keep first-seen order and are deduplicated.
	assert.Equal(t, []string{"Electronics", "Uncategorized"}, result.Summary.Categories)
}

func TestProcessItems_Empty(t *testing.T) {
	result, err := ProcessItems(context.Background(), ItemsRequest{})
	require.NoError(t, err)

	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "No items provided", result.Message)
	assert.Empty(t, result.ProcessedItems)
	assert.Nil(t, result.Summary)
}

func TestProcessBatchOrders(t *testing.T) {
	req := BatchRequest{
		Orders: []BatchOrder{
			{
				OrderID:      "ORD-001",
				CustomerName: "Alice",
				Items: []BatchOrderItem{
					{ProductName: "Widget", Quantity: 2, UnitPrice: 10.00},
					{ProductName: "Gadget", Quantity: 1, UnitPrice: 5.00},
				},
			},
			{
				OrderID:      "ORD-002",
				CustomerName: "Bob",
				Items: []BatchOrderItem{
					{ProductName: "Widget", Quantity: 3, UnitPrice: 10.00},
				},
			},
		},
	}

	result, err := ProcessBatchOrders(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Successfully processed 2 batch orders", result.Message)
	require.Len(t, result.ProcessedOrders, 2)

	first := result.ProcessedOrders[0]
	assert.Equal(t, "ORD-001", first.OrderID)
	assert.Equal(t, "processed", first.Status)
	assert.Equal(t, 2, first.ItemsCount)
	assert.InDelta(t, 25.00, first.TotalAmount, 0.001)

	require.NotNil(t, result.Summary)
	assert.Equal(t, 2, result.Summary.TotalOrders)
	assert.InDelta(t, 55.00, result.Summary.TotalRevenue, 0.001)
	assert.InDelta(t, 27.50, result.Summary.AverageOrderValue, 0.001)
}

func TestProcessBatchOrders_QuantityDefaultsToOne(t *testing.T) {
	req := BatchRequest{
		Orders: []BatchOrder{
			{
				OrderID: "ORD-001",
				Items: []BatchOrderItem{
					{ProductName: "Widget", UnitPrice: 10.00},
				},
			},
		},
	}

	result, err := ProcessBatchOrders(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.ProcessedOrders, 1)
	require.Len(t, result.ProcessedOrders[0].Items, 1)
	assert.Equal(t, 1, result.ProcessedOrders[0].Items[0].Quantity)
	assert.InDelta(t, 10.00, result.ProcessedOrders[0].TotalAmount, 0.001)
	assert.Equal(t, "Unknown Customer", result.ProcessedOrders[0].CustomerName)
}

func TestProcessBatchOrders_Empty(t *testing.T) {
	result, err := ProcessBatchOrders(context.Background(), BatchRequest{})
	require.NoError(t, err)

	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "No orders provided", result.Message)
	assert.Empty(t, result.ProcessedOrders)
}
