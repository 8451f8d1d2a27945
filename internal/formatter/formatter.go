package formatter

import (
	"github.com/jacoelho/jseek/internal/document"
	"github.com/jacoelho/jseek/internal/path"
)

// Match is one node reported by a search.
type Match struct {
	Source  string            // input the node was found in
	Binding string            // binding literal that matched
	Path    path.Path         // full path of the node from the document root
	Node    document.Document // possibly still unverified
}

// Formatter writes matches to its output. Implementations verify the node
// they are given, so an unsupported value surfaces as a Format error.
type Formatter interface {
	Format(m Match) error
	// Flush writes any buffered output.
	Flush() error
}

// DisplayPath renders p for humans; the root renders as "$".
func DisplayPath(p path.Path) string {
	if p.IsRoot() {
		return "$"
	}
	return p.String()
}
