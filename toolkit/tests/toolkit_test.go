package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pavania1999/complex-tools-openapi/toolkit"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Helpers ---

type echoArgs struct {
	Val string `json:"val"`
}

type echoResp struct {
	Res string `json:"res"`
}

func newTestParent(t *testing.T, name string, children ...toolkit.Child) toolkit.Parent {
	t.Helper()
	return toolkit.NewParent(name, "desc_"+name, children...)
}

func newTestChild(t *testing.T, name string, retVal string, shouldErr bool) toolkit.Child {
	t.Helper()
	handler := func(ctx context.Context, args echoArgs) (interface{}, error) {
		if shouldErr {
			return nil, fmt.Errorf("child_err_%s", name)
		}
		return echoResp{Res: retVal + ":" + args.Val}, nil
	}
	return toolkit.NewChild[echoArgs](name, "desc_"+name, handler)
}

// --- Test New ---

func TestNew(t *testing.T) {
	ordersParent := newTestParent(t, "orders", newTestChild(t, "quote", "q", false))
	profileParent := newTestParent(t, "profile", newTestChild(t, "start", "s", false))

	tests := []struct {
		name        string
		kName       string
		parents     []toolkit.Parent
		expectCount int
		expectNames []string
	}{
		{
			name:        "no parents",
			kName:       "empty_tk",
			parents:     []toolkit.Parent{},
			expectCount: 0,
			expectNames: []string{},
		},
		{
			name:        "one parent",
			kName:       "one_parent_tk",
			parents:     []toolkit.Parent{ordersParent},
			expectCount: 1,
			expectNames: []string{"orders"},
		},
		{
			name:        "two parents",
			kName:       "two_parent_tk",
			parents:     []toolkit.Parent{ordersParent, profileParent},
			expectCount: 2,
			expectNames: []string{"orders", "profile"},
		},
		{
			name:        "nil parent ignored",
			kName:       "nil_ignored_tk",
			parents:     []toolkit.Parent{ordersParent, nil, profileParent},
			expectCount: 2,
			expectNames: []string{"orders", "profile"},
		},
		{
			name:        "duplicate parent overwrites",
			kName:       "dup_overwrite_tk",
			parents:     []toolkit.Parent{ordersParent, profileParent, ordersParent},
			expectCount: 2,
			expectNames: []string{"orders", "profile"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := toolkit.New(tc.kName, tc.parents...)
			require.NotNil(t, tk)
			assert.Equal(t, tc.kName, tk.GetToolkitName())

			desc := tk.GetToolkitDescription()
			assert.Equal(t, tc.expectCount, strings.Count(desc, "<parent name="),
				"Description should contain the correct number of parent blocks")

			for _, name := range tc.expectNames {
				assert.Contains(t, desc, fmt.Sprintf(`<parent name="%s"`, name),
					"Description should contain parent name: %s", name)
			}
		})
	}
}

// --- Test HandleToolKit ---

func TestHandleToolKit_Success(t *testing.T) {
	ordersParent := newTestParent(t, "orders",
		newTestChild(t, "quote", "quoted", false),
		newTestChild(t, "confirm", "confirmed", false),
	)
	profileParent := newTestParent(t, "profile",
		newTestChild(t, "start", "started", false),
	)
	tk := toolkit.New("test_handle_success", ordersParent, profileParent)
	require.NotNil(t, tk)

	inputJSON := `{
		"name": "toolkit",
		"parents": [
			{
				"name": "orders",
				"childs": [
					{"name": "confirm", "args": {"val": "ORD-1"}},
					{"name": "quote", "args": {"val": "ORD-2"}}
				]
			},
			{
				"name": "profile",
				"childs": [
					{"name": "start", "args": {"val": "John"}}
				]
			}
		]
	}`

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(inputJSON))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "test_handle_success", resp.Name)
	require.Len(t, resp.Responses, 2)

	pr1 := resp.Responses[0]
	assert.Equal(t, "orders", pr1.Name)
	require.Len(t, pr1.ChildsResponses, 2)
	assert.Equal(t, "confirm", pr1.ChildsResponses[0].Name)
	assert.Equal(t, echoResp{Res: "confirmed:ORD-1"}, pr1.ChildsResponses[0].Response)
	assert.Equal(t, "quote", pr1.ChildsResponses[1].Name)
	assert.Equal(t, echoResp{Res: "quoted:ORD-2"}, pr1.ChildsResponses[1].Response)

	pr2 := resp.Responses[1]
	assert.Equal(t, "profile", pr2.Name)
	require.Len(t, pr2.ChildsResponses, 1)
	assert.Equal(t, "start", pr2.ChildsResponses[0].Name)
	assert.Equal(t, echoResp{Res: "started:John"}, pr2.ChildsResponses[0].Response)
}

func TestHandleToolKit_ParseError(t *testing.T) {
	tk := toolkit.New("test_parse_error")
	require.NotNil(t, tk)

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(`{"invalid_json...`))
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "toolkit_request_parse_error", resp.Name)
	require.Len(t, resp.Responses, 1)
	pr := resp.Responses[0]
	assert.Equal(t, "_parse_error", pr.Name)
	require.Len(t, pr.ChildsResponses, 1)
	cr := pr.ChildsResponses[0]
	assert.Equal(t, "_input_error", cr.Name)
	tkErr, ok := cr.Response.(toolkit.ToolKitError)
	require.True(t, ok, "Expected response to be ToolKitError")
	assert.Equal(t, "invalid_input_json", tkErr.Code)
}

func TestHandleToolKit_ParentNotFound(t *testing.T) {
	tk := toolkit.New("test_p_notfound", newTestParent(t, "orders"))
	require.NotNil(t, tk)

	inputJSON := `{
		"name": "toolkit",
		"parents": [
			{"name": "no_such_parent", "childs": []}
		]
	}`

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(inputJSON))
	require.NoError(t, err)
	require.Len(t, resp.Responses, 1)

	pr := resp.Responses[0]
	assert.Equal(t, "no_such_parent", pr.Name)
	require.Len(t, pr.ChildsResponses, 1)
	cr := pr.ChildsResponses[0]
	assert.Equal(t, "_parent_error", cr.Name)
	tkErr, ok := cr.Response.(toolkit.ToolKitError)
	require.True(t, ok, "Expected response to be ToolKitError")
	assert.Equal(t, "parent_not_found", tkErr.Code)
}

func TestHandleToolKit_ChildNotFound(t *testing.T) {
	tk := toolkit.New("test_c_notfound", newTestParent(t, "orders", newTestChild(t, "quote", "q", false)))
	require.NotNil(t, tk)

	inputJSON := `{
		"name": "toolkit",
		"parents": [
			{"name": "orders", "childs": [{"name": "no_such_child", "args": {}}]}
		]
	}`

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(inputJSON))
	require.NoError(t, err)
	require.Len(t, resp.Responses, 1)

	pr := resp.Responses[0]
	assert.Equal(t, "orders", pr.Name)
	require.Len(t, pr.ChildsResponses, 1)
	cr := pr.ChildsResponses[0]
	assert.Equal(t, "no_such_child", cr.Name)
	tkErr, ok := cr.Response.(toolkit.ToolKitError)
	require.True(t, ok, "Expected response to be ToolKitError")
	assert.Equal(t, "child_not_found", tkErr.Code)
}

func TestHandleToolKit_ChildHandlerError(t *testing.T) {
	tk := toolkit.New("test_c_err", newTestParent(t, "orders", newTestChild(t, "quote_err", "q", true)))
	require.NotNil(t, tk)

	inputJSON := `{
		"name": "toolkit",
		"parents": [
			{"name": "orders", "childs": [{"name": "quote_err", "args": {"val":"v1"}}]}
		]
	}`

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(inputJSON))
	require.NoError(t, err)
	require.Len(t, resp.Responses, 1)

	pr := resp.Responses[0]
	require.Len(t, pr.ChildsResponses, 1)
	cr := pr.ChildsResponses[0]
	assert.Equal(t, "quote_err", cr.Name)
	tkErr, ok := cr.Response.(toolkit.ToolKitError)
	require.True(t, ok, "Expected response to be ToolKitError")
	assert.Equal(t, "handler_execution_error", tkErr.Code)
}

func TestHandleToolKit_ChildUnmarshalError(t *testing.T) {
	tk := toolkit.New("test_c_unmarshal_err", newTestParent(t, "orders", newTestChild(t, "quote", "q", false)))
	require.NotNil(t, tk)

	// Wrong type for the expected field
	inputJSON := `{
		"name": "toolkit",
		"parents": [
			{"name": "orders", "childs": [{"name": "quote", "args": {"val": 123}}]}
		]
	}`

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(inputJSON))
	require.NoError(t, err)
	require.Len(t, resp.Responses, 1)

	pr := resp.Responses[0]
	require.Len(t, pr.ChildsResponses, 1)
	cr := pr.ChildsResponses[0]
	assert.Equal(t, "quote", cr.Name)
	tkErr, ok := cr.Response.(toolkit.ToolKitError)
	require.True(t, ok, "Expected response to be ToolKitError")
	assert.Equal(t, "invalid_arguments", tkErr.Code)
}

// --- Test GetToolkitDescription ---

func TestGetToolkitDescription(t *testing.T) {
	ordersParent := newTestParent(t, "orders",
		newTestChild(t, "quote", "q", false),
	)
	profileParent := newTestParent(t, "profile",
		newTestChild(t, "start", "s", false),
		newTestChild(t, "update", "u", false),
	)
	emptyParent := newTestParent(t, "emptyP")

	tests := []struct {
		name            string
		kName           string
		parents         []toolkit.Parent
		expectToContain []string
	}{
		{
			name:    "no parents",
			kName:   "tk_empty",
			parents: []toolkit.Parent{},
			expectToContain: []string{
				`<toolkit name="tk_empty">`,
				`</toolkit>`,
				`Below is the list of available <parents> and their <childs>:`,
			},
		},
		{
			name:    "with parents and children",
			kName:   "tk_full",
			parents: []toolkit.Parent{ordersParent, profileParent, emptyParent},
			expectToContain: []string{
				`<toolkit name="tk_full">`,
				`<parent name="orders" description="desc_orders">`,
				`<child name="quote" description="desc_quote">`,
				`"properties":{"val":`,
				`<parent name="profile" description="desc_profile">`,
				`<child name="start" description="desc_start">`,
				`<child name="update" description="desc_update">`,
				`<parent name="emptyP" description="desc_emptyP">`,
				`</parent>`,
				`</toolkit>`,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := toolkit.New(tc.kName, tc.parents...)
			require.NotNil(t, tk)

			desc := tk.GetToolkitDescription()
			for _, expected := range tc.expectToContain {
				assert.Contains(t, desc, expected, "Description should contain expected substring")
			}
		})
	}
}

// --- Test GetToolkitSchema ---

func TestGetToolkitSchema(t *testing.T) {
	tk := toolkit.New("test_schema")
	require.NotNil(t, tk)

	anthropicSchema := tk.GetToolkitSchema("anthropic")
	assert.NotNil(t, anthropicSchema, "Schema for known provider 'anthropic' should not be nil")

	schemaPtr, ok := anthropicSchema.(*jsonschema.Schema)
	require.True(t, ok, "Anthropic schema should be a *jsonschema.Schema")
	assert.Equal(t, "object", schemaPtr.Type, "Expected schema type to be object")
	assert.NotNil(t, schemaPtr.Properties, "Expected schema properties to be non-nil")

	unknownSchema := tk.GetToolkitSchema("unknown_provider")
	assert.NotNil(t, unknownSchema, "Schema for unknown provider should default and not be nil")
	assert.Equal(t, anthropicSchema, unknownSchema, "Schema for unknown provider should default to Anthropic schema")
}
