package typesystem

import (
	"fmt"
	"strings"
)

// UnknownText is how an unknown type is rendered. It is never valid source.
const UnknownText = "{unknown}"

// Open literal types render like this; neither is valid source.
const (
	IntVarText   = "{integer}"
	FloatVarText = "{float}"
)

// Display renders t the way it would be written in source code.
func Display(t Type) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	switch typ := t.(type) {
	case nil, TUnknown:
		sb.WriteString(UnknownText)
	case TParam:
		sb.WriteString(typ.Name)
	case TVar:
		if typ.Float {
			sb.WriteString(FloatVarText)
		} else {
			sb.WriteString(IntVarText)
		}
	case TApply:
		writeApply(sb, typ)
	default:
		fmt.Fprintf(sb, "%v", t)
	}
}

func writeApply(sb *strings.Builder, t TApply) {
	param := func(i int) Type {
		if i < len(t.Params) {
			return t.Params[i]
		}
		return TUnknown{}
	}

	switch ctor := t.Ctor.(type) {
	case Bool:
		sb.WriteString("bool")
	case Char:
		sb.WriteString("char")
	case Str:
		sb.WriteString("str")
	case Never:
		sb.WriteString("!")
	case Int:
		sb.WriteString(ctor.Kind)
	case Float:
		sb.WriteString(ctor.Kind)
	case Tuple:
		sb.WriteByte('(')
		writeList(sb, t.Params)
		if len(t.Params) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	case Ref:
		sb.WriteByte('&')
		if ctor.Mutable {
			sb.WriteString("mut ")
		}
		writeType(sb, param(0))
	case Slice:
		sb.WriteByte('[')
		writeType(sb, param(0))
		sb.WriteByte(']')
	case Array:
		sb.WriteByte('[')
		writeType(sb, param(0))
		if ctor.Len >= 0 {
			fmt.Fprintf(sb, "; %d]", ctor.Len)
		} else {
			sb.WriteString("; _]")
		}
	case Adt:
		sb.WriteString(ctor.Name)
		if len(t.Params) > 0 {
			sb.WriteByte('<')
			writeList(sb, t.Params)
			sb.WriteByte('>')
		}
	default:
		fmt.Fprintf(sb, "%v", ctor)
	}
}

func writeList(sb *strings.Builder, types []Type) {
	for i, p := range types {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeType(sb, p)
	}
}
