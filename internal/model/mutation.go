// Package model defines the data structures for mutation testing.
package model

import (
	"fmt"
	"go/ast"
	"strings"
)

// MutationKind represents the category of mutation.
type MutationKind string

const (
	// KindAll matches every mutation kind in filters.
	KindAll MutationKind = "all"

	// KindArithmetic swaps arithmetic operators (+, -, *, /, %).
	KindArithmetic MutationKind = "arithmetic"
	// KindComparison swaps comparison operators (<, <=, >, >=, ==, !=).
	KindComparison MutationKind = "comparison"
	// KindLogical swaps && and ||.
	KindLogical MutationKind = "logical"
	// KindBoolean flips boolean literals (true <-> false).
	KindBoolean MutationKind = "boolean"
	// KindUnary removes unary operators (!x, -x, ^x).
	KindUnary MutationKind = "unary"
	// KindIncDec swaps ++ and --.
	KindIncDec MutationKind = "incdec"
	// KindAssignment swaps compound assignment operators (+=, -=, ...).
	KindAssignment MutationKind = "assignment"
	// KindBranch forces or negates if/for conditions.
	KindBranch MutationKind = "branch"
	// KindCollection empties slice, array and map literals.
	KindCollection MutationKind = "collection"
	// KindString empties or fills string literals.
	KindString MutationKind = "string"
	// KindNumber shifts numeric literals.
	KindNumber MutationKind = "number"
	// KindStatement removes call statements.
	KindStatement MutationKind = "statement"
)

// Kinds lists every concrete mutation kind in catalogue order.
func Kinds() []MutationKind {
	return []MutationKind{
		KindArithmetic, KindComparison, KindLogical, KindBoolean,
		KindUnary, KindIncDec, KindAssignment, KindBranch,
		KindCollection, KindString, KindNumber, KindStatement,
	}
}

// ParseMutationKind resolves a kind name, case-insensitively.
func ParseMutationKind(name string) (MutationKind, error) {
	kind := MutationKind(strings.ToLower(strings.TrimSpace(name)))
	if kind == KindAll {
		return kind, nil
	}

	for _, known := range Kinds() {
		if kind == known {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unsupported mutation kind: %q", name)
}

// Level selects how aggressive the mutagen catalogue is.
type Level int

const (
	// LevelBasic enables operator and literal flips only.
	LevelBasic Level = iota
	// LevelStandard adds branch, collection, string and unary mutations.
	LevelStandard
	// LevelComplete adds number shifts and statement removal.
	LevelComplete
)

func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelStandard:
		return "standard"
	case LevelComplete:
		return "complete"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel resolves a level name. An empty name means LevelStandard.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return LevelBasic, nil
	case "", "standard":
		return LevelStandard, nil
	case "complete":
		return LevelComplete, nil
	default:
		return LevelStandard, fmt.Errorf("unknown mutation level: %q", name)
	}
}

// Mutation is a raw replacement proposed by a mutagen, before registry bookkeeping.
//
// Original references a node of the input tree; Replacement is a freshly built node
// and never aliases the input tree.
type Mutation struct {
	Kind        MutationKind
	Original    ast.Node
	Replacement ast.Node
	Description string
}

// MutagenOptions is what every mutagen receives alongside the node it inspects.
type MutagenOptions struct {
	Level Level
}
