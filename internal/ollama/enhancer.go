// internal/ollama/enhancer.go
package ollama

import (
	"context"
	"fmt"
	"strings"
)

// enhanceInstruction wraps a base scenario for the model.
const enhanceInstruction = "Based on the following scenario, generate a detailed and engaging farming-related prompt:\n\n%s\n\nGenerated prompt:"

// Generator is the part of Client the Enhancer needs.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, options map[string]any) (Result, error)
}

// Enhancer asks a model to rewrite a base scenario into a richer prompt.
type Enhancer struct {
	Client  Generator
	Model   string
	Options map[string]any
}

// EnhancePrompt builds the instruction for base.
func EnhancePrompt(base string) string {
	return fmt.Sprintf(enhanceInstruction, base)
}

// Enhance returns the model's rewrite of base, trimmed. An empty reply is an error.
func (e *Enhancer) Enhance(ctx context.Context, base string) (Result, error) {
	res, err := e.Client.Generate(ctx, e.Model, EnhancePrompt(base), e.Options)
	if err != nil {
		return Result{}, err
	}
	res.Text = strings.TrimSpace(res.Text)
	if res.Text == "" {
		return Result{}, fmt.Errorf("model %s returned an empty response", e.Model)
	}
	return res, nil
}
