package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend implements Backend on top of the Google Gemini API.
type GeminiBackend struct {
	client *genai.Client
}

// NewGeminiBackend creates a Gemini-backed Backend.
func NewGeminiBackend(ctx context.Context, apiKey string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiBackend{client: client}, nil
}

// Close releases resources held by the backend.
func (b *GeminiBackend) Close() error {
	if b.client != nil {
		return b.client.Close()
	}
	return nil
}

// Generate performs one call against the named model. Multi-turn history,
// tool declarations and attachments in req are mapped onto the Gemini
// chat surface; directives come back as Result.Directives.
func (b *GeminiBackend) Generate(ctx context.Context, model string, req Request) (*Result, error) {
	m := b.client.GenerativeModel(model)
	m.SetTemperature(0.1)

	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if req.JSONOutput {
		m.ResponseMIMEType = "application/json"
	}
	if len(req.Tools) > 0 {
		m.Tools = []*genai.Tool{{FunctionDeclarations: toDeclarations(req.Tools)}}
	}

	contents := toContents(req.Turns)
	if len(contents) == 0 {
		return nil, fmt.Errorf("request has no turns")
	}

	last := contents[len(contents)-1]
	parts := last.Parts
	if req.Attachment != nil {
		parts = append(parts, genai.Blob{MIMEType: req.Attachment.MIMEType, Data: req.Attachment.Data})
	}

	cs := m.StartChat()
	cs.History = contents[:len(contents)-1]

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return nil, err
	}
	return fromResponse(resp)
}

// toDeclarations converts tool definitions to Gemini function declarations.
func toDeclarations(tools []ToolDef) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Params))
		var required []string
		for _, p := range t.Params {
			props[p.Name] = &genai.Schema{
				Type:        toSchemaType(p.Type),
				Description: p.Description,
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			},
		})
	}
	return decls
}

func toSchemaType(t string) genai.Type {
	if t == "integer" {
		return genai.TypeInteger
	}
	return genai.TypeString
}

// toContents converts orchestrator turns to Gemini chat contents.
func toContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		var parts []genai.Part
		if turn.Content != "" {
			parts = append(parts, genai.Text(turn.Content))
		}
		for _, d := range turn.Directives {
			parts = append(parts, genai.FunctionCall{Name: d.Name, Args: d.Args})
		}
		for _, r := range turn.ToolResults {
			parts = append(parts, genai.FunctionResponse{
				Name:     r.Name,
				Response: map[string]any{"result": r.Response},
			})
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, &genai.Content{Role: turn.Role, Parts: parts})
	}
	return contents
}

// fromResponse extracts text and directives from a Gemini response.
func fromResponse(resp *genai.GenerateContentResponse) (*Result, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	var texts []string
	var res Result
	for _, part := range candidate.Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			texts = append(texts, string(p))
		case genai.FunctionCall:
			res.Directives = append(res.Directives, Directive{Name: p.Name, Args: p.Args})
		}
	}
	res.Text = strings.Join(texts, "")
	if res.Text == "" && len(res.Directives) == 0 {
		return nil, fmt.Errorf("no usable parts in response")
	}
	return &res, nil
}
