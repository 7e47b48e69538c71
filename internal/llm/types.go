package llm

import "context"

// Turn roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry in an ordered conversation. A model turn may carry
// the directives it emitted; a user turn may carry tool results being
// fed back into the exchange.
type Turn struct {
	Role        string
	Content     string
	Directives  []Directive
	ToolResults []ToolResult
}

// Directive is a structured tool-invocation request emitted by a backend.
type Directive struct {
	Name string
	Args map[string]any
}

// ToolResult is the textual outcome of executing one directive.
type ToolResult struct {
	Name     string
	Response string
}

// ToolRunner executes a directive and returns its textual result,
// including failure messages, so the backend can react before finalizing
// its reply.
type ToolRunner interface {
	Run(ctx context.Context, d Directive) string
}

// ParamDef describes one argument of a tool.
type ParamDef struct {
	Name        string
	Type        string // "string" or "integer"
	Description string
	Required    bool
}

// ToolDef declares a tool the backend may invoke mid-response.
type ToolDef struct {
	Name        string
	Description string
	Params      []ParamDef
}

// Attachment is binary content (e.g. a proof image) added to the final
// user turn of an exchange.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Request is a single raw backend invocation.
type Request struct {
	System     string
	Turns      []Turn
	JSONOutput bool
	Tools      []ToolDef
	Attachment *Attachment
}

// Result is the raw outcome of one backend invocation.
type Result struct {
	Text       string
	Directives []Directive
}

// Backend abstracts one call against a named model. Implemented by the
// Gemini client and by fakes in tests.
type Backend interface {
	Generate(ctx context.Context, model string, req Request) (*Result, error)
}
