// Package mcp exposes an A2UI component catalog over MCP (Model Context
// Protocol), letting agent-side tooling discover which component types
// this client renders and what their property schemas look like.
//
//	cat := catalog.Core()
//	if err := mcp.ServeStdio(cat); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/surfacekit/a2ui/catalog"
	"github.com/surfacekit/a2ui/schema"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server over a component catalog. It registers
// two tools: list_components, returning the full catalog document, and
// get_component_schema, returning one component type's property schema.
func NewServer(cat *catalog.Catalog, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "a2ui-catalog",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	listTool := mcp.NewToolWithRawSchema(
		"list_components",
		"List the UI component types this client can render, with their property schemas.",
		schema.Object().MustBuild(),
	)
	s.AddTool(listTool, listComponentsHandler(cat))

	getTool := mcp.NewToolWithRawSchema(
		"get_component_schema",
		"Get the property schema for one component type by name.",
		schema.Object().
			Field("name", schema.String().Desc("Component type name, e.g. \"Text\"").Required()).
			MustBuild(),
	)
	s.AddTool(getTool, getComponentSchemaHandler(cat))

	return s
}

func listComponentsHandler(cat *catalog.Catalog) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := cat.Document()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(doc)), nil
	}
}

func getComponentSchemaHandler(cat *catalog.Catalog) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name string `json:"name"`
		}
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			if err := json.Unmarshal(data, &args); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}

		t, ok := cat.Get(args.Name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown component type %q", args.Name)), nil
		}
		return mcp.NewToolResultText(string(t.Properties)), nil
	}
}

// ServeStdio serves the catalog over stdin/stdout, the standard transport
// for MCP servers invoked as subprocesses.
func ServeStdio(cat *catalog.Catalog, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(cat, opts...))
}
