package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"

	m "gooze.dev/pkg/mutor/internal/model"
)

// ErrUnplaceable reports a mutant whose original node has no source range in the file.
var ErrUnplaceable = errors.New("mutant cannot be placed in source")

// TextPlacer weaves a mutant into source text: the replacement is printed
// and spliced over the byte range of the original node.
type TextPlacer struct{}

// NewTextPlacer constructs a TextPlacer.
func NewTextPlacer() *TextPlacer {
	return &TextPlacer{}
}

// Place returns a mutated copy of content. content must be the source the
// mutant's original node was parsed from, registered in fset.
func (p *TextPlacer) Place(fset *token.FileSet, content []byte, mutant m.Mutant) ([]byte, error) {
	original, replacement := mutant.Mutation.Original, mutant.Mutation.Replacement
	if original == nil || replacement == nil {
		return nil, fmt.Errorf("%w: mutant %d is incomplete", ErrUnplaceable, mutant.ID)
	}

	file := fset.File(original.Pos())
	if file == nil {
		return nil, fmt.Errorf("%w: mutant %d has no position", ErrUnplaceable, mutant.ID)
	}

	start, end := file.Offset(original.Pos()), file.Offset(original.End())
	if start < 0 || end > len(content) || start > end {
		return nil, fmt.Errorf("%w: range %d-%d outside %s", ErrUnplaceable, start, end, file.Name())
	}

	var text bytes.Buffer
	if err := format.Node(&text, fset, replacement); err != nil {
		return nil, fmt.Errorf("print replacement of mutant %d: %w", mutant.ID, err)
	}

	return replaceRange(content, start, end, text.Bytes()), nil
}

func replaceRange(content []byte, start, end int, replacement []byte) []byte {
	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, replacement...)
	out = append(out, content[end:]...)

	return out
}
