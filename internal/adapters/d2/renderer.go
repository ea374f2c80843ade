// Package d2 renders diagram descriptions with a locally installed d2
// binary. When the binary is missing or fails, callers fall back to the
// description text; rendering is strictly best effort.
package d2

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Renderer implements ports.DiagramRenderer via the d2 CLI.
type Renderer struct {
	binary string
}

// RendererOption configures the renderer.
type RendererOption func(*Renderer)

// WithBinary overrides the d2 binary path.
func WithBinary(path string) RendererOption {
	return func(r *Renderer) {
		r.binary = path
	}
}

// NewRenderer creates a renderer using the d2 binary from PATH unless
// overridden.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{binary: "d2"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Available reports whether the d2 binary can be found.
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// Render writes the script to a temporary file and invokes d2 on it.
// The temporary file is removed on every exit path.
func (r *Renderer) Render(ctx context.Context, script string, outputPath string) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("d2 binary not found: %w", err)
	}

	tmp, err := os.CreateTemp("", "datakompass-*.d2")
	if err != nil {
		return fmt.Errorf("failed to create diagram temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.WriteString(script); err != nil {
		return fmt.Errorf("failed to write diagram script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close diagram script: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure output directory: %w", err)
		}
	}

	cmd := exec.CommandContext(ctx, r.binary, tmpPath, outputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("d2 rendering failed: %w: %s", err, out)
	}
	return nil
}
