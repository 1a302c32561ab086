package catalog

import (
	"errors"

	"marketlens/internal/shape"
)

// ErrUnknownTool is returned when a tool name does not exist in the
// registry.
var ErrUnknownTool = errors.New("unknown tool")

// ErrUnknownPrompt is returned when a prompt name does not exist in the
// registry.
var ErrUnknownPrompt = errors.New("unknown prompt")

// ErrUnknownResource is returned when a resource URI does not exist in the
// registry.
var ErrUnknownResource = errors.New("unknown resource")

// ErrMissingArg is returned when a required argument is absent or blank.
var ErrMissingArg = errors.New("missing required argument")

// ArgDef describes one tool argument for schema generation.
type ArgDef struct {
	Name        string
	Type        string // json schema type: string, number, boolean, array
	Description string
	Required    bool
}

// ToolDef fully characterizes one catalog entry: its parameter schema, the
// recipe for the upstream call, and the default shaping options applied
// when the caller leaves them unspecified.
//
// DefaultFields is purely descriptive: it documents the fields a caller
// typically wants, but it never triggers projection. Only an explicitly
// supplied fields argument does.
type ToolDef struct {
	Name           string
	Description    string
	Method         string
	Path           string // path template; "{ticker}" is substituted
	RequiresTicker bool
	HasSections    bool
	Args           []ArgDef // tool-specific filter arguments
	Defaults       shape.Defaults
	DefaultFields  []string
}

// PromptDef is a static prompt template. Placeholders of the form
// {{name}} are substituted with the caller's arguments at render time.
type PromptDef struct {
	Name        string
	Description string
	Args        []ArgDef
	Template    string
}

// ResourceDef is a static, read-only resource.
type ResourceDef struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Content     func(*Registry) (string, error)
}

// Output is the discriminated result of a tool invocation. Handlers return
// one of the two concrete variants below; the dispatch layer type-switches
// on it instead of sniffing for envelope-shaped keys.
type Output interface {
	isOutput()
}

// ShapedOutput carries a fully shaped envelope.
type ShapedOutput struct {
	Result shape.Result
}

func (ShapedOutput) isOutput() {}

// TextOutput carries raw passthrough text, used for validation failures
// and other responses that never went through the shaping pipeline.
type TextOutput struct {
	Text    string
	IsError bool
}

func (TextOutput) isOutput() {}
