package ports

import "context"

// DiagramRenderer turns a textual diagram description into a rendered
// artifact (SVG or PNG) at the given output path.
//
// Rendering is best effort: implementations return an error when the
// underlying tool is unavailable or fails, and callers are expected to
// fall back to presenting the description text itself.
type DiagramRenderer interface {
	Render(ctx context.Context, script string, outputPath string) error
}
