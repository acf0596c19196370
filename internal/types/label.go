package types

import (
	"strconv"
	"strings"
)

// Label returns a user-friendly label for a TypeID, suitable for
// diagnostics.
func Label(typesIn *Interner, id TypeID) string {
	return labelDepth(typesIn, id, 0)
}

func labelDepth(typesIn *Interner, id TypeID, depth int) string {
	if id == NoTypeID || typesIn == nil {
		return "?"
	}
	if depth > 6 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindUnit:
		return "()"
	case KindNever:
		return "!"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return formatIntType(tt.Width, true)
	case KindUint:
		return formatIntType(tt.Width, false)
	case KindFloat:
		return formatFloatType(tt.Width)
	case KindReference:
		if tt.Mutable {
			return "&mut " + labelDepth(typesIn, tt.Elem, depth+1)
		}
		return "&" + labelDepth(typesIn, tt.Elem, depth+1)
	case KindTuple:
		info, ok := typesIn.TupleInfo(id)
		if !ok {
			return "?"
		}
		parts := make([]string, 0, len(info.Elems))
		for _, elem := range info.Elems {
			parts = append(parts, labelDepth(typesIn, elem, depth+1))
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindFn:
		info, ok := typesIn.FnInfo(id)
		if !ok {
			return "fn"
		}
		parts := make([]string, 0, len(info.Params))
		for _, p := range info.Params {
			parts = append(parts, labelDepth(typesIn, p, depth+1))
		}
		return "fn(" + strings.Join(parts, ", ") + ") -> " + labelDepth(typesIn, info.Result, depth+1)
	case KindUnion:
		info, ok := typesIn.UnionInfo(id)
		if !ok {
			return "?"
		}
		if len(info.TypeArgs) == 0 {
			return info.Name
		}
		parts := make([]string, 0, len(info.TypeArgs))
		for _, arg := range info.TypeArgs {
			parts = append(parts, labelDepth(typesIn, arg, depth+1))
		}
		return info.Name + "<" + strings.Join(parts, ", ") + ">"
	case KindParam:
		info, ok := typesIn.ParamInfo(id)
		if !ok || info.Name == "" {
			return "_"
		}
		return info.Name
	default:
		return "?"
	}
}

func formatIntType(width Width, signed bool) string {
	prefix := "int"
	if !signed {
		prefix = "uint"
	}
	if width == WidthAny {
		return prefix
	}
	return prefix + strconv.Itoa(int(width))
}

func formatFloatType(width Width) string {
	if width == WidthAny {
		return "float"
	}
	return "float" + strconv.Itoa(int(width))
}
