package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindUnit is the empty tuple type (); it has exactly one value and
	// carries no information.
	KindUnit
	// KindNever is the uninhabited type; expressions of this type never
	// produce a value.
	KindNever
	KindBool
	KindString
	KindInt
	KindUint
	KindFloat
	KindReference
	// KindTuple is a fixed arity product type; element types live in a
	// TupleInfo payload.
	KindTuple
	// KindFn is a named function type; the signature lives in an FnInfo
	// payload.
	KindFn
	// KindUnion is a nominal tagged union; Option and Result container
	// shapes are unions with one and two type arguments respectively.
	KindUnion
	// KindParam is an unbound type variable of a generic signature.
	KindParam
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnit:
		return "unit"
	case KindNever:
		return "never"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindReference:
		return "reference"
	case KindTuple:
		return "tuple"
	case KindFn:
		return "fn"
	case KindUnion:
		return "union"
	case KindParam:
		return "param"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integers/floats.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Type is a compact descriptor for any supported type. Composite kinds keep
// their metadata in side tables addressed by Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // for references
	Width   Width  // for numeric primitives
	Mutable bool   // for references
	Payload uint32 // slot into the kind-specific info table
}

// Descriptor helpers ---------------------------------------------------------

// MakeInt describes a signed integer of the given width (WidthAny for "int").
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}

// MakeUint describes an unsigned integer type.
func MakeUint(width Width) Type {
	return Type{Kind: KindUint, Width: width}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakeReference describes &T or &mut T depending on the mutable flag.
func MakeReference(elem TypeID, mutable bool) Type {
	return Type{Kind: KindReference, Elem: elem, Mutable: mutable}
}

func cloneTypeArgs(args []TypeID) []TypeID {
	if len(args) == 0 {
		return nil
	}
	out := make([]TypeID, len(args))
	copy(out, args)
	return out
}
