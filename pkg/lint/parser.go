package lint

import (
	"context"

	"github.com/tkruer/jfmt/pkg/jast"
)

// Parser parses Java source content into a FileSnapshot.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g. parser/javaparse) provide the concrete parsing
// logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Java source bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw source bytes (must not be mutated by the implementation).
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - jast.ValidateTokens(snapshot.Tokens, len(snapshot.Content)) == true
	//   - snapshot.Root != nil && snapshot.Root.Kind == jast.NodeCompilationUnit
	//   - All nodes have node.File == snapshot
	Parse(ctx context.Context, path string, content []byte) (*jast.FileSnapshot, error)
}
