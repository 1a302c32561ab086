package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"marketlens/internal/catalog"
	"marketlens/pkg/logging"
)

// registerTools adds every catalog tool to the MCP server with a schema
// assembled from its definition.
func (s *Server) registerTools() {
	for _, def := range s.registry.Tools() {
		tool := mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: toolInputSchema(def),
		}
		s.server.AddTool(tool, s.toolHandler(def))
	}
	logging.Debug("Server", "Registered %d tools", len(s.registry.Tools()))
}

// toolInputSchema builds the JSON schema for one tool: the ticker argument
// when required, section selection when available, the tool's own filter
// arguments, then the shaping options every tool shares.
func toolInputSchema(def catalog.ToolDef) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	var required []string

	addArg := func(arg catalog.ArgDef) {
		prop := map[string]interface{}{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if arg.Type == "array" {
			prop["items"] = map[string]interface{}{"type": "string"}
		}
		properties[arg.Name] = prop
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	if def.RequiresTicker {
		addArg(catalog.ArgDef{
			Name:        "ticker",
			Type:        "string",
			Description: "Stock ticker symbol (e.g. AAPL)",
			Required:    true,
		})
	}
	if def.HasSections {
		addArg(catalog.ArgDef{
			Name:        "sections",
			Type:        "array",
			Description: "Dataset sections to include; omit or pass [\"all\"] for everything",
		})
	}
	for _, arg := range def.Args {
		addArg(arg)
	}
	for _, arg := range catalog.CommonArgs() {
		addArg(arg)
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// toolHandler wires one tool definition to the invoker.
func (s *Server) toolHandler(def catalog.ToolDef) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		out, err := s.invoker.Invoke(ctx, def, args)
		if err != nil {
			logging.Error("Server", err, "Tool %s failed", def.Name)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toToolResult(out)
	}
}

// toToolResult converts an invocation output into an MCP tool result.
func toToolResult(out catalog.Output) (*mcp.CallToolResult, error) {
	switch v := out.(type) {
	case catalog.ShapedOutput:
		data, err := json.MarshalIndent(v.Result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	case catalog.TextOutput:
		if v.IsError {
			return mcp.NewToolResultError(v.Text), nil
		}
		return mcp.NewToolResultText(v.Text), nil
	default:
		return nil, fmt.Errorf("unexpected output type %T", out)
	}
}

// registerPrompts adds the static prompt catalog.
func (s *Server) registerPrompts() {
	for _, def := range s.registry.Prompts() {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(def.Description)}
		for _, arg := range def.Args {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
			if arg.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
		}
		prompt := mcp.NewPrompt(def.Name, opts...)
		s.server.AddPrompt(prompt, s.promptHandler(def))
	}
	logging.Debug("Server", "Registered %d prompts", len(s.registry.Prompts()))
}

func (s *Server) promptHandler(def catalog.PromptDef) func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := def.Render(request.Params.Arguments)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(def.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	}
}

// registerResources adds the static resource catalog. Resource content is
// generated on read, so catalog changes between releases are reflected
// without cache invalidation.
func (s *Server) registerResources() {
	for _, def := range s.registry.Resources() {
		resource := mcp.NewResource(def.URI, def.Name,
			mcp.WithResourceDescription(def.Description),
			mcp.WithMIMEType(def.MIMEType),
		)
		s.server.AddResource(resource, s.resourceHandler(def))
	}
	logging.Debug("Server", "Registered %d resources", len(s.registry.Resources()))
}

func (s *Server) resourceHandler(def catalog.ResourceDef) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := def.Content(s.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to generate resource %s: %w", def.URI, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      def.URI,
				MIMEType: def.MIMEType,
				Text:     content,
			},
		}, nil
	}
}
