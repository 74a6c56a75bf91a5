// Package provider adapts external generation services to the two stage
// capabilities the pipeline needs: search-augmented research and
// reasoning-based enhancement.
package provider

import "context"

// Researcher produces a structured research report from instructions and a
// task string, using a search-augmented model.
type Researcher interface {
	Research(ctx context.Context, instructions, task string) (string, error)
}

// Enhancer refines a research report from a single user prompt, using a
// reasoning model.
type Enhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}
