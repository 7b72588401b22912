package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/pavania1999/complex-tools-openapi/toolkit"

	"github.com/stretchr/testify/assert"
)

// --- Test Structs ---

type lookupArgs struct {
	SKU string `json:"sku" jsonschema:"required"`
}

type lookupResult struct {
	Summary string `json:"summary"`
}

// --- TestNewChild ---

func TestNewChild_Metadata(t *testing.T) {
	name := "lookup_item"
	desc := "Looks up an inventory item by SKU"
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		return lookupResult{Summary: "found:" + args.SKU}, nil
	}

	child := toolkit.NewChild(name, desc, handler)

	if child.GetName() != name {
		t.Errorf("Expected name '%s', got '%s'", name, child.GetName())
	}
	if child.GetDescription() != desc {
		t.Errorf("Expected description '%s', got '%s'", desc, child.GetDescription())
	}

	assert.NotNil(t, child.GetInputSchema(), "schema should be generated from the args type")
}

func TestNewChild_Handle_Success(t *testing.T) {
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		return lookupResult{Summary: "found:" + args.SKU}, nil
	}
	child := toolkit.NewChild("lookup_ok", "desc", handler)

	result, err := child.Handle(context.Background(), json.RawMessage(`{"sku":"WM-2024-001"}`))
	if err != nil {
		t.Fatalf("Handle failed unexpectedly: %v", err)
	}

	res, ok := result.(lookupResult)
	if !ok {
		t.Fatalf("Expected result type lookupResult, got %T", result)
	}
	if res.Summary != "found:WM-2024-001" {
		t.Errorf("Unexpected summary: %s", res.Summary)
	}
}

func TestNewChild_Handle_HandlerError(t *testing.T) {
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		return nil, errors.New("backend unavailable")
	}
	child := toolkit.NewChild("lookup_err", "desc", handler)

	_, err := child.Handle(context.Background(), json.RawMessage(`{"sku":"X"}`))
	if err == nil {
		t.Fatal("Expected an error from Handle, got nil")
	}

	tkErr, ok := err.(toolkit.ToolKitError)
	if !ok {
		t.Fatalf("Expected error type toolkit.ToolKitError, got %T", err)
	}
	if tkErr.Code != "handler_execution_error" {
		t.Errorf("Expected error code 'handler_execution_error', got '%s'", tkErr.Code)
	}
}

func TestNewChild_Handle_ToolKitErrorPassthrough(t *testing.T) {
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		return nil, toolkit.NewError("item_not_found", "no such SKU")
	}
	child := toolkit.NewChild("lookup_tk_err", "desc", handler)

	_, err := child.Handle(context.Background(), json.RawMessage(`{"sku":"X"}`))
	if err == nil {
		t.Fatal("Expected an error from Handle, got nil")
	}

	tkErr, ok := err.(toolkit.ToolKitError)
	if !ok {
		t.Fatalf("Expected error type toolkit.ToolKitError, got %T", err)
	}
	// Structured errors from the handler keep their own code instead of
	// being re-wrapped.
	if tkErr.Code != "item_not_found" {
		t.Errorf("Expected error code 'item_not_found', got '%s'", tkErr.Code)
	}
}

func TestNewChild_Handle_UnmarshalError(t *testing.T) {
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		t.Fatal("Handler called unexpectedly on unmarshal error")
		return nil, nil
	}
	child := toolkit.NewChild("lookup_bad_json", "desc", handler)

	_, err := child.Handle(context.Background(), json.RawMessage(`{"sku`))
	if err == nil {
		t.Fatal("Expected an error from Handle, got nil")
	}

	tkErr, ok := err.(toolkit.ToolKitError)
	if !ok {
		t.Fatalf("Expected error type toolkit.ToolKitError, got %T", err)
	}
	if tkErr.Code != "invalid_arguments" {
		t.Errorf("Expected error code 'invalid_arguments', got '%s'", tkErr.Code)
	}
}

// --- TestNewParent ---

// newLookupChild builds a simple child for parent tests.
func newLookupChild(t *testing.T, name string, prefix string, shouldError bool) toolkit.Child {
	t.Helper()
	handler := func(ctx context.Context, args lookupArgs) (interface{}, error) {
		if shouldError {
			return nil, fmt.Errorf("error_from_%s", name)
		}
		return lookupResult{Summary: fmt.Sprintf("%s:%s", prefix, args.SKU)}, nil
	}
	return toolkit.NewChild[lookupArgs](name, "desc_"+name, handler)
}

func TestNewParent_Metadata(t *testing.T) {
	parent := toolkit.NewParent("inventory", "Inventory tools", newLookupChild(t, "lookup", "found", false))

	if parent.GetName() != "inventory" {
		t.Errorf("Expected parent name 'inventory', got '%s'", parent.GetName())
	}
	if parent.GetDescription() != "Inventory tools" {
		t.Errorf("Unexpected parent description: '%s'", parent.GetDescription())
	}
}

func TestNewParent_GetChildren(t *testing.T) {
	child1 := newLookupChild(t, "lookup", "found", false)
	child2 := newLookupChild(t, "reserve", "reserved", false)

	parent := toolkit.NewParent("inventory", "desc", child1, child2)

	children := parent.GetChildren()
	if len(children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(children))
	}
	if _, ok := children["lookup"]; !ok {
		t.Error("Expected child 'lookup' to be registered")
	}
	if _, ok := children["reserve"]; !ok {
		t.Error("Expected child 'reserve' to be registered")
	}
	if _, ok := children["release"]; ok {
		t.Error("Did not expect child 'release' to be registered")
	}
}

func TestNewParent_HandleChildren_Success(t *testing.T) {
	child1 := newLookupChild(t, "lookup", "found", false)
	child2 := newLookupChild(t, "reserve", "reserved", false)
	parent := toolkit.NewParent("inventory", "desc", child1, child2)

	requests := []toolkit.ToolKitChild{
		{Name: "reserve", Args: json.RawMessage(`{"sku":"A-1"}`)},
		{Name: "lookup", Args: json.RawMessage(`{"sku":"B-2"}`)},
	}

	parentResp := parent.HandleChildren(context.Background(), requests)

	if parentResp.Name != "inventory" {
		t.Errorf("Unexpected parent response name: %s", parentResp.Name)
	}
	if len(parentResp.ChildsResponses) != 2 {
		t.Fatalf("Expected 2 child responses, got %d", len(parentResp.ChildsResponses))
	}

	// Responses come back in request order, not registration order.
	first := parentResp.ChildsResponses[0]
	if first.Name != "reserve" {
		t.Errorf("Expected first response from 'reserve', got '%s'", first.Name)
	}
	assert.Equal(t, lookupResult{Summary: "reserved:A-1"}, first.Response)

	second := parentResp.ChildsResponses[1]
	if second.Name != "lookup" {
		t.Errorf("Expected second response from 'lookup', got '%s'", second.Name)
	}
	assert.Equal(t, lookupResult{Summary: "found:B-2"}, second.Response)
}

func TestNewParent_HandleChildren_ChildNotFound(t *testing.T) {
	parent := toolkit.NewParent("inventory", "desc", newLookupChild(t, "lookup", "found", false))

	requests := []toolkit.ToolKitChild{
		{Name: "lookup", Args: json.RawMessage(`{"sku":"A-1"}`)},
		{Name: "no_such_tool", Args: json.RawMessage(`{}`)},
	}

	parentResp := parent.HandleChildren(context.Background(), requests)

	if len(parentResp.ChildsResponses) != 2 {
		t.Fatalf("Expected 2 child responses, got %d", len(parentResp.ChildsResponses))
	}

	missing := parentResp.ChildsResponses[1]
	if missing.Name != "no_such_tool" {
		t.Errorf("Expected child name 'no_such_tool', got '%s'", missing.Name)
	}
	tkErr, ok := missing.Response.(toolkit.ToolKitError)
	if !ok {
		t.Fatalf("Expected response type toolkit.ToolKitError, got %T", missing.Response)
	}
	if tkErr.Code != "child_not_found" {
		t.Errorf("Expected error code 'child_not_found', got '%s'", tkErr.Code)
	}
}

func TestNewParent_HandleChildren_ChildError(t *testing.T) {
	parent := toolkit.NewParent("inventory", "desc",
		newLookupChild(t, "lookup", "found", false),
		newLookupChild(t, "reserve", "reserved", true),
	)

	requests := []toolkit.ToolKitChild{
		{Name: "lookup", Args: json.RawMessage(`{"sku":"A-1"}`)},
		{Name: "reserve", Args: json.RawMessage(`{"sku":"A-1"}`)},
	}

	parentResp := parent.HandleChildren(context.Background(), requests)

	if len(parentResp.ChildsResponses) != 2 {
		t.Fatalf("Expected 2 child responses, got %d", len(parentResp.ChildsResponses))
	}

	// First child still succeeds.
	assert.Equal(t, lookupResult{Summary: "found:A-1"}, parentResp.ChildsResponses[0].Response)

	// Failing child's error lands in its response slot without aborting the batch.
	failed := parentResp.ChildsResponses[1]
	tkErr, ok := failed.Response.(toolkit.ToolKitError)
	if !ok {
		t.Fatalf("Expected response type toolkit.ToolKitError, got %T", failed.Response)
	}
	if tkErr.Code != "handler_execution_error" {
		t.Errorf("Expected error code 'handler_execution_error', got '%s'", tkErr.Code)
	}
}

func TestNewParent_NilAndDuplicateChildren(t *testing.T) {
	child1 := newLookupChild(t, "lookup", "first", false)
	child1Again := newLookupChild(t, "lookup", "second", false)

	parent := toolkit.NewParent("inventory", "desc", child1, nil, child1Again)

	children := parent.GetChildren()
	if len(children) != 1 {
		t.Fatalf("Expected 1 child after nil skip and duplicate overwrite, got %d", len(children))
	}

	// The last registration wins.
	result, err := children["lookup"].Handle(context.Background(), json.RawMessage(`{"sku":"X"}`))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	assert.Equal(t, lookupResult{Summary: "second:X"}, result)
}
