package lox

import (
	"fmt"
	"strconv"
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	case KindBoundMethod:
		return "bound method"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String renders a value the way print does. Numbers use the shortest
// representation that round-trips, so 1.0 prints as 1.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.data.(bool) {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return v.data.(string)
	case KindFunction:
		return fmt.Sprintf("<fun %s>", v.data.(*Function).Name)
	case KindClass:
		return fmt.Sprintf("<class %s>", v.data.(*ClassDef).Name)
	case KindInstance:
		return fmt.Sprintf("<%s instance>", v.data.(*Instance).Class.Name)
	case KindBoundMethod:
		return fmt.Sprintf("<fun %s>", v.data.(*BoundMethod).Fn.Name)
	default:
		return v.kind.String()
	}
}
