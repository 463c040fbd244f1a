package domain

import (
	"go/token"

	m "gooze.dev/pkg/mutor/internal/model"
)

// Placer weaves an accepted mutant back into the source it came from. The
// orchestrator only carries it; placement happens after traversal.
type Placer interface {
	Place(fset *token.FileSet, content []byte, mutant m.Mutant) ([]byte, error)
}
