package catalog

import (
	"fmt"
)

// Registry is the immutable catalog of tools, prompts and resources. It is
// built once at process start and injected into the dispatch layer; there
// is no runtime mutation and therefore no locking.
type Registry struct {
	tools     []ToolDef
	prompts   []PromptDef
	resources []ResourceDef

	toolsByName    map[string]ToolDef
	promptsByName  map[string]PromptDef
	resourcesByURI map[string]ResourceDef
}

// NewRegistry builds the registry from the static catalog. It fails only
// on catalog construction bugs (duplicate names), which are programmer
// errors caught at startup.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		tools:          Tools(),
		prompts:        Prompts(),
		resources:      Resources(),
		toolsByName:    make(map[string]ToolDef),
		promptsByName:  make(map[string]PromptDef),
		resourcesByURI: make(map[string]ResourceDef),
	}

	for _, tool := range r.tools {
		if _, exists := r.toolsByName[tool.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", tool.Name)
		}
		r.toolsByName[tool.Name] = tool
	}
	for _, prompt := range r.prompts {
		if _, exists := r.promptsByName[prompt.Name]; exists {
			return nil, fmt.Errorf("duplicate prompt name %q", prompt.Name)
		}
		r.promptsByName[prompt.Name] = prompt
	}
	for _, resource := range r.resources {
		if _, exists := r.resourcesByURI[resource.URI]; exists {
			return nil, fmt.Errorf("duplicate resource URI %q", resource.URI)
		}
		r.resourcesByURI[resource.URI] = resource
	}

	return r, nil
}

// Tools returns all tool definitions in catalog order.
func (r *Registry) Tools() []ToolDef {
	return r.tools
}

// Prompts returns all prompt definitions in catalog order.
func (r *Registry) Prompts() []PromptDef {
	return r.prompts
}

// Resources returns all resource definitions in catalog order.
func (r *Registry) Resources() []ResourceDef {
	return r.resources
}

// LookupTool resolves a tool by name.
func (r *Registry) LookupTool(name string) (ToolDef, error) {
	tool, ok := r.toolsByName[name]
	if !ok {
		return ToolDef{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool, nil
}

// LookupPrompt resolves a prompt by name.
func (r *Registry) LookupPrompt(name string) (PromptDef, error) {
	prompt, ok := r.promptsByName[name]
	if !ok {
		return PromptDef{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}
	return prompt, nil
}

// LookupResource resolves a resource by URI.
func (r *Registry) LookupResource(uri string) (ResourceDef, error) {
	resource, ok := r.resourcesByURI[uri]
	if !ok {
		return ResourceDef{}, fmt.Errorf("%w: %s", ErrUnknownResource, uri)
	}
	return resource, nil
}
