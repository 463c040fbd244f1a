// Package syntax classifies go/ast nodes and provides the tree, equivalence and
// semantic helpers the mutation core is built on.
package syntax

import "go/ast"

// Kind is the closed set of node kinds the dispatch table resolves on.
type Kind int

// Node kinds. KindAny is not a node kind; it matches every node in dispatch entries.
const (
	KindAny Kind = iota
	KindOther
	KindFile
	KindComment
	KindGenDecl
	KindFuncDecl
	KindImportSpec
	KindValueSpec
	KindTypeSpec
	KindFieldList
	KindField
	KindBlockStmt
	KindExprStmt
	KindAssignStmt
	KindIncDecStmt
	KindIfStmt
	KindForStmt
	KindRangeStmt
	KindSwitchStmt
	KindTypeSwitchStmt
	KindCaseClause
	KindSelectStmt
	KindCommClause
	KindReturnStmt
	KindDeferStmt
	KindGoStmt
	KindDeclStmt
	KindLabeledStmt
	KindBranchStmt
	KindSendStmt
	KindEmptyStmt
	KindIdent
	KindBasicLit
	KindBinaryExpr
	KindUnaryExpr
	KindParenExpr
	KindCallExpr
	KindSelectorExpr
	KindIndexExpr
	KindSliceExpr
	KindStarExpr
	KindTypeAssertExpr
	KindCompositeLit
	KindKeyValueExpr
	KindFuncLit
	KindTypeExpr
)

var kindNames = map[Kind]string{
	KindAny:            "any",
	KindOther:          "other",
	KindFile:           "file",
	KindComment:        "comment",
	KindGenDecl:        "gen-decl",
	KindFuncDecl:       "func-decl",
	KindImportSpec:     "import-spec",
	KindValueSpec:      "value-spec",
	KindTypeSpec:       "type-spec",
	KindFieldList:      "field-list",
	KindField:          "field",
	KindBlockStmt:      "block",
	KindExprStmt:       "expr-stmt",
	KindAssignStmt:     "assign",
	KindIncDecStmt:     "inc-dec",
	KindIfStmt:         "if",
	KindForStmt:        "for",
	KindRangeStmt:      "range",
	KindSwitchStmt:     "switch",
	KindTypeSwitchStmt: "type-switch",
	KindCaseClause:     "case-clause",
	KindSelectStmt:     "select",
	KindCommClause:     "comm-clause",
	KindReturnStmt:     "return",
	KindDeferStmt:      "defer",
	KindGoStmt:         "go",
	KindDeclStmt:       "decl-stmt",
	KindLabeledStmt:    "labeled",
	KindBranchStmt:     "branch",
	KindSendStmt:       "send",
	KindEmptyStmt:      "empty",
	KindIdent:          "ident",
	KindBasicLit:       "basic-lit",
	KindBinaryExpr:     "binary",
	KindUnaryExpr:      "unary",
	KindParenExpr:      "paren",
	KindCallExpr:       "call",
	KindSelectorExpr:   "selector",
	KindIndexExpr:      "index",
	KindSliceExpr:      "slice",
	KindStarExpr:       "star",
	KindTypeAssertExpr: "type-assert",
	KindCompositeLit:   "composite-lit",
	KindKeyValueExpr:   "key-value",
	KindFuncLit:        "func-lit",
	KindTypeExpr:       "type-expr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Kinds returns every node kind KindOf can produce.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindOther; k <= KindTypeExpr; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// KindOf classifies a node. Node types without a dedicated kind map to KindOther.
func KindOf(n ast.Node) Kind {
	switch n.(type) {
	case *ast.File:
		return KindFile
	case *ast.Comment, *ast.CommentGroup:
		return KindComment
	case *ast.GenDecl:
		return KindGenDecl
	case *ast.FuncDecl:
		return KindFuncDecl
	case *ast.ImportSpec:
		return KindImportSpec
	case *ast.ValueSpec:
		return KindValueSpec
	case *ast.TypeSpec:
		return KindTypeSpec
	case *ast.FieldList:
		return KindFieldList
	case *ast.Field:
		return KindField
	case *ast.BlockStmt:
		return KindBlockStmt
	case *ast.ExprStmt:
		return KindExprStmt
	case *ast.AssignStmt:
		return KindAssignStmt
	case *ast.IncDecStmt:
		return KindIncDecStmt
	case *ast.IfStmt:
		return KindIfStmt
	case *ast.ForStmt:
		return KindForStmt
	case *ast.RangeStmt:
		return KindRangeStmt
	case *ast.SwitchStmt:
		return KindSwitchStmt
	case *ast.TypeSwitchStmt:
		return KindTypeSwitchStmt
	case *ast.CaseClause:
		return KindCaseClause
	case *ast.SelectStmt:
		return KindSelectStmt
	case *ast.CommClause:
		return KindCommClause
	case *ast.ReturnStmt:
		return KindReturnStmt
	case *ast.DeferStmt:
		return KindDeferStmt
	case *ast.GoStmt:
		return KindGoStmt
	case *ast.DeclStmt:
		return KindDeclStmt
	case *ast.LabeledStmt:
		return KindLabeledStmt
	case *ast.BranchStmt:
		return KindBranchStmt
	case *ast.SendStmt:
		return KindSendStmt
	case *ast.EmptyStmt:
		return KindEmptyStmt
	case *ast.Ident:
		return KindIdent
	case *ast.BasicLit:
		return KindBasicLit
	case *ast.BinaryExpr:
		return KindBinaryExpr
	case *ast.UnaryExpr:
		return KindUnaryExpr
	case *ast.ParenExpr:
		return KindParenExpr
	case *ast.CallExpr:
		return KindCallExpr
	case *ast.SelectorExpr:
		return KindSelectorExpr
	case *ast.IndexExpr, *ast.IndexListExpr:
		return KindIndexExpr
	case *ast.SliceExpr:
		return KindSliceExpr
	case *ast.StarExpr:
		return KindStarExpr
	case *ast.TypeAssertExpr:
		return KindTypeAssertExpr
	case *ast.CompositeLit:
		return KindCompositeLit
	case *ast.KeyValueExpr:
		return KindKeyValueExpr
	case *ast.FuncLit:
		return KindFuncLit
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType,
		*ast.InterfaceType, *ast.StructType, *ast.Ellipsis:
		return KindTypeExpr
	default:
		return KindOther
	}
}
