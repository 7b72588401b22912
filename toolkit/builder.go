// Package toolkit provides a hierarchical tool orchestration framework for AI-powered applications.
// This file provides the builder functions used to construct Child and Parent
// implementations from plain typed handler functions, without requiring consumers
// to implement the interfaces by hand.
package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// --- Child Builder ---

// builtChild is the Child implementation produced by NewChild.
// It binds a name, description, and pre-generated input schema to a typed
// handler function, taking care of argument unmarshaling and error wrapping.
type builtChild[T any] struct {
	name        string
	description string
	schema      interface{}
	handler     func(ctx context.Context, args T) (interface{}, error)
}

// NewChild creates a Child from a typed handler function.
// The input schema is generated once from the type parameter T using the
// jsonschema reflector, so the handler only ever deals with parsed arguments.
//
// Parameters:
//   - name: Unique name of the child tool within its parent
//   - description: Human-readable description used in schemas and prompts
//   - handler: The typed function implementing the tool's logic
//
// The returned Child handles two failure modes on behalf of the handler:
//   - Arguments that fail to unmarshal into T produce an "invalid_arguments" ToolKitError
//   - Handler errors that are not already ToolKitError are wrapped as "handler_execution_error"
//
// Example:
//
//	child := toolkit.NewChild("process_order", "Processes a customer order.", handleProcessOrder)
func NewChild[T any](name, description string, handler func(ctx context.Context, args T) (interface{}, error)) Child {
	return &builtChild[T]{
		name:        name,
		description: description,
		schema:      GenerateSchema[T](),
		handler:     handler,
	}
}

// GetName returns the child tool's unique name.
func (c *builtChild[T]) GetName() string { return c.name }

// GetDescription returns the child tool's description.
func (c *builtChild[T]) GetDescription() string { return c.description }

// GetInputSchema returns the JSON schema generated from the handler's argument type.
func (c *builtChild[T]) GetInputSchema() interface{} { return c.schema }

// Handle unmarshals the raw arguments into the handler's argument type and invokes it.
// Errors are normalized to ToolKitError so callers can rely on structured codes.
func (c *builtChild[T]) Handle(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var parsed T
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, ToolKitError{
			Code:    "invalid_arguments",
			Message: fmt.Sprintf("invalid arguments for tool '%s': %v", c.name, err),
		}
	}

	result, err := c.handler(ctx, parsed)
	if err != nil {
		var tkErr ToolKitError
		if errors.As(err, &tkErr) {
			return nil, tkErr
		}
		return nil, ToolKitError{
			Code:    "handler_execution_error",
			Message: fmt.Sprintf("tool '%s' execution failed: %v", c.name, err),
		}
	}
	return result, nil
}

// --- Parent Builder ---

// builtParent is the Parent implementation produced by NewParent.
// It maintains a name-keyed registry of children and orchestrates their execution.
type builtParent struct {
	name        string
	description string
	children    map[string]Child
}

// NewParent creates a Parent grouping the provided children under a shared namespace.
//
// Behavior mirrors toolkit.New for its parents:
//   - Nil children are skipped with a warning
//   - Duplicate child names are overwritten by the last occurrence, with a warning
func NewParent(name, description string, children ...Child) Parent {
	childMap := make(map[string]Child, len(children))
	for _, c := range children {
		if c == nil {
			log.Printf("Warning: nil child provided to NewParent('%s'), skipping.", name)
			continue
		}
		if _, exists := childMap[c.GetName()]; exists {
			log.Printf("Warning: Duplicate child name '%s' in parent '%s'. Overwriting.", c.GetName(), name)
		}
		childMap[c.GetName()] = c
	}
	return &builtParent{
		name:        name,
		description: description,
		children:    childMap,
	}
}

// GetName returns the parent's unique name.
func (p *builtParent) GetName() string { return p.name }

// GetDescription returns the parent's description.
func (p *builtParent) GetDescription() string { return p.description }

// GetChildren returns the name-keyed registry of child tools.
func (p *builtParent) GetChildren() map[string]Child { return p.children }

// HandleChildren executes the requested child tools in request order.
// Failures never abort the batch: an unknown child yields a "child_not_found"
// error response and a failing handler yields its ToolKitError, both placed in
// the corresponding ChildResponse so the overall structure is preserved.
func (p *builtParent) HandleChildren(ctx context.Context, childRequests []ToolKitChild) ParentResponse {
	response := ParentResponse{Name: p.name}

	for _, req := range childRequests {
		child, ok := p.children[req.Name]
		if !ok {
			log.Printf("Parent '%s': requested child '%s' not found", p.name, req.Name)
			response.AddResponse(ChildResponse{
				Name:     req.Name,
				Response: NewError("child_not_found", fmt.Sprintf("Child tool '%s' not registered in parent '%s'", req.Name, p.name)),
			})
			continue
		}

		result, err := child.Handle(ctx, req.Args)
		if err != nil {
			response.AddResponse(ChildResponse{Name: req.Name, Response: err})
			continue
		}
		response.AddResponse(ChildResponse{Name: req.Name, Response: result})
	}

	return response
}
