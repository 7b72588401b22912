// Package tools assembles the individual tool packages into a single toolkit
// instance. The API server and the Claude example both register the same
// parents, so the HTTP passthrough and the model see an identical toolset.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/pavania1999/complex-tools-openapi/pkg/tools/employees"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/enums"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/inventory"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/orders"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/profile"
	"github.com/pavania1999/complex-tools-openapi/toolkit"
)

// NewToolkit builds the full toolkit over the given session manager.
func NewToolkit(profiles *profile.Manager) *toolkit.Toolkit {
	// Handler wrappers for implementation logic for the toolkit

	handleProcessOrder := func(ctx context.Context, args orders.OrderRequest) (interface{}, error) {
		return orders.ProcessOrder(ctx, args)
	}
	handleProcessEmployee := func(ctx context.Context, args employees.EmployeeRequest) (interface{}, error) {
		return employees.ProcessEmployee(ctx, args)
	}
	handleAnalyzePerson := func(ctx context.Context, args employees.PersonRequest) (interface{}, error) {
		return employees.AnalyzePerson(ctx, args)
	}
	handleRegisterEmployee := func(ctx context.Context, args employees.RegistrationRequest) (interface{}, error) {
		return employees.RegisterEmployee(ctx, args)
	}
	handleProcessItems := func(ctx context.Context, args inventory.ItemsRequest) (interface{}, error) {
		return inventory.ProcessItems(ctx, args)
	}
	handleProcessBatch := func(ctx context.Context, args inventory.BatchRequest) (interface{}, error) {
		return inventory.ProcessBatchOrders(ctx, args)
	}
	handleAccountStatus := func(ctx context.Context, args enums.AccountStatusArgs) (interface{}, error) {
		return enums.UpdateAccountStatus(ctx, args)
	}
	handleCustomerProfile := func(ctx context.Context, args enums.CustomerProfileArgs) (interface{}, error) {
		return enums.CreateCustomerProfile(ctx, args)
	}
	handleMultiLevel := func(ctx context.Context, args enums.MultiLevelArgs) (interface{}, error) {
		return enums.CreateMultiLevelProfile(ctx, args)
	}

	// Session tool handlers report missing sessions and incomplete profiles
	// in-band so the model can react conversationally instead of seeing a
	// tool execution failure.
	handleStartSession := func(ctx context.Context, args profile.StartArgs) (interface{}, error) {
		return profiles.Start(map[string]interface{}{"name": args.Name}), nil
	}
	handleUpdateSession := func(ctx context.Context, args profile.UpdateArgs) (interface{}, error) {
		view, err := profiles.Update(args.SessionID, args.Updates)
		if err != nil {
			return sessionToolError(args.SessionID, err)
		}
		return view, nil
	}
	handleSessionStatus := func(ctx context.Context, args profile.SessionIDArgs) (interface{}, error) {
		view, err := profiles.Status(args.SessionID)
		if err != nil {
			return sessionToolError(args.SessionID, err)
		}
		return view, nil
	}
	handleFinalizeSession := func(ctx context.Context, args profile.SessionIDArgs) (interface{}, error) {
		result, err := profiles.Finalize(args.SessionID)
		if err != nil {
			return sessionToolError(args.SessionID, err)
		}
		return result, nil
	}

	ordersParent := toolkit.NewParent(
		"orders",
		"Processes customer orders with nested customer, product and shipping data.",
		toolkit.NewChild("process_order", "Processes a customer order and returns a confirmation.", handleProcessOrder),
		toolkit.NewChild("process_batch_orders", "Processes a batch of orders and summarizes revenue.", handleProcessBatch),
	)
	employeesParent := toolkit.NewParent(
		"employees",
		"Manages employee records, person relationships and registration with reporting chains.",
		toolkit.NewChild("process_employee", "Formats a comprehensive employee profile.", handleProcessEmployee),
		toolkit.NewChild("analyze_person", "Analyzes a person and their friend relationships.", handleAnalyzePerson),
		toolkit.NewChild("register_employee", "Registers an employee and resolves the manager reporting chain.", handleRegisterEmployee),
	)
	inventoryParent := toolkit.NewParent(
		"inventory",
		"Processes inventory item lists with categories, specifications and totals.",
		toolkit.NewChild("process_items", "Processes a list of inventory items.", handleProcessItems),
	)
	enumsParent := toolkit.NewParent(
		"enums",
		"Validates enum-constrained fields on account and customer payloads.",
		toolkit.NewChild("update_account_status", "Validates and applies an account status change.", handleAccountStatus),
		toolkit.NewChild("create_customer_profile", "Creates a customer profile, validating enum fields.", handleCustomerProfile),
		toolkit.NewChild("create_multi_level_profile", "Creates a profile validating enums at every nesting level.", handleMultiLevel),
	)
	profileParent := toolkit.NewParent(
		"profile",
		"Builds a customer profile incrementally across conversation turns.",
		toolkit.NewChild("start_profile_session", "Starts a new profile session from a customer name.", handleStartSession),
		toolkit.NewChild("update_profile_session", "Merges new fields into an in-progress session.", handleUpdateSession),
		toolkit.NewChild("get_session_status", "Reports a session's completeness and next prompt.", handleSessionStatus),
		toolkit.NewChild("finalize_profile_session", "Validates and finalizes a completed profile.", handleFinalizeSession),
	)

	return toolkit.New(
		"complex_tools",
		ordersParent,
		employeesParent,
		inventoryParent,
		enumsParent,
		profileParent,
	)
}

func sessionToolError(sessionID string, err error) (interface{}, error) {
	var verr *profile.ValidationError
	switch {
	case errors.Is(err, profile.ErrSessionNotFound):
		return map[string]interface{}{
			"error":   "SESSION_NOT_FOUND",
			"message": fmt.Sprintf("Session %s not found", sessionID),
		}, nil
	case errors.As(err, &verr):
		return map[string]interface{}{
			"error":          "VALIDATION_ERROR",
			"message":        "Profile incomplete - missing required fields",
			"missing_fields": verr.MissingFields,
			"session_id":     sessionID,
		}, nil
	default:
		return nil, err
	}
}
