package syntax

import (
	"go/ast"
	"go/constant"
	"go/types"
	"math"
)

// SemanticModel answers type and constant queries about the nodes of one tree.
// It is read-only; nothing in the mutation core writes to it.
type SemanticModel interface {
	// TypeOf returns the type of expr, or nil when unknown.
	TypeOf(expr ast.Expr) types.Type
	// IsConstant reports whether expr is a compile-time constant.
	IsConstant(expr ast.Expr) bool
	// ConstantValue returns the value of a constant expression, or nil.
	ConstantValue(expr ast.Expr) constant.Value
	// IsType reports whether expr denotes a type rather than a value.
	IsType(expr ast.Expr) bool
	// ObjectOf returns the object ident binds to, or nil when unknown.
	ObjectOf(ident *ast.Ident) types.Object
}

// TypesModel is a SemanticModel backed by the output of go/types.
// A nil *types.Info yields a model that knows nothing.
type TypesModel struct {
	info *types.Info
}

// NewTypesModel wraps type-checker output.
func NewTypesModel(info *types.Info) *TypesModel {
	return &TypesModel{info: info}
}

// NewInfo allocates a types.Info with every map the model reads.
func NewInfo() *types.Info {
	return &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
}

// TypeOf implements SemanticModel.
func (m *TypesModel) TypeOf(expr ast.Expr) types.Type {
	if m == nil || m.info == nil {
		return nil
	}

	return m.info.TypeOf(expr)
}

// IsConstant implements SemanticModel.
func (m *TypesModel) IsConstant(expr ast.Expr) bool {
	return m.ConstantValue(expr) != nil
}

// ConstantValue implements SemanticModel.
func (m *TypesModel) ConstantValue(expr ast.Expr) constant.Value {
	if m == nil || m.info == nil {
		return nil
	}

	return m.info.Types[expr].Value
}

// IsType implements SemanticModel.
func (m *TypesModel) IsType(expr ast.Expr) bool {
	if m == nil || m.info == nil {
		return false
	}

	tv, ok := m.info.Types[expr]

	return ok && tv.IsType()
}

// ObjectOf implements SemanticModel.
func (m *TypesModel) ObjectOf(ident *ast.Ident) types.Object {
	if m == nil || m.info == nil {
		return nil
	}

	return m.info.ObjectOf(ident)
}

// BasicInfo returns the basic-type flags of t's underlying type. ok is false
// when t is unknown or not a basic type.
func BasicInfo(t types.Type) (info types.BasicInfo, ok bool) {
	if t == nil {
		return 0, false
	}

	basic, isBasic := t.Underlying().(*types.Basic)
	if !isBasic || basic.Kind() == types.Invalid {
		return 0, false
	}

	return basic.Info(), true
}

// IsUniverse reports whether obj is the predeclared object with the given name.
func IsUniverse(obj types.Object, name string) bool {
	return obj != nil && obj == types.Universe.Lookup(name)
}

// Fits reports whether the constant v is representable by t. Unknown values,
// unknown types and untyped constants always fit.
func Fits(v constant.Value, t types.Type) bool {
	if v == nil || v.Kind() == constant.Unknown || t == nil {
		return true
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsUntyped != 0 {
		return true
	}

	if basic.Info()&types.IsInteger == 0 {
		return true
	}

	if v.Kind() != constant.Int {
		v = constant.ToInt(v)
		if v.Kind() != constant.Int {
			return false
		}
	}

	switch basic.Kind() {
	case types.Int8:
		return intInRange(v, math.MinInt8, math.MaxInt8)
	case types.Int16:
		return intInRange(v, math.MinInt16, math.MaxInt16)
	case types.Int32:
		return intInRange(v, math.MinInt32, math.MaxInt32)
	case types.Int, types.Int64:
		_, exact := constant.Int64Val(v)
		return exact
	case types.Uint8:
		return uintUpTo(v, math.MaxUint8)
	case types.Uint16:
		return uintUpTo(v, math.MaxUint16)
	case types.Uint32:
		return uintUpTo(v, math.MaxUint32)
	case types.Uint, types.Uint64, types.Uintptr:
		return uintUpTo(v, math.MaxUint64)
	default:
		return true
	}
}

func intInRange(v constant.Value, lo, hi int64) bool {
	i, exact := constant.Int64Val(v)
	return exact && i >= lo && i <= hi
}

func uintUpTo(v constant.Value, hi uint64) bool {
	u, exact := constant.Uint64Val(v)
	return exact && u <= hi
}
