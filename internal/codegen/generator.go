// Package codegen defines the renderer contract shared by every generated
// source file and the registry the orchestrator resolves renderers from.
package codegen

import (
	"fmt"

	"github.com/bootgen-dev/bootgen/internal/naming"
)

// Generator is the interface every source renderer must implement
type Generator interface {
	// Generate renders the file content for one module
	Generate(names naming.Variants) ([]byte, error)

	// Kind returns the artifact kind (e.g., "service", "controller")
	Kind() string

	// Path returns the slash separated file path relative to the language
	// source root
	Path(names naming.Variants) string
}

// Artifact is one generated file: a path and its text. It has no
// filesystem identity until the orchestrator writes it.
type Artifact struct {
	Path    string
	Content string
}

// Render runs a generator and packs its output into an Artifact
func Render(g Generator, names naming.Variants) (Artifact, error) {
	content, err := g.Generate(names)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to render %s: %w", g.Kind(), err)
	}
	return Artifact{Path: g.Path(names), Content: string(content)}, nil
}
