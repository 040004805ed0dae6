package lox

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindFunction
	KindClass
	KindInstance
	KindBoundMethod
)

// Value is the closed dynamic type of the language. The kind discriminates
// data; callers go through the accessor methods rather than the any field.
type Value struct {
	kind ValueKind
	data any
}

// Truthy reports whether a value counts as true in a condition. Only nil and
// false are falsey; zero, the empty string, and every object are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.data.(bool)
	default:
		return true
	}
}

// Equal implements the == operator. Values of different kinds are never
// equal; nil equals only nil, primitives compare by value, and functions,
// classes, instances, and bound methods compare by identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.data.(bool) == other.data.(bool)
	case KindNumber:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindBoundMethod:
		a, b := v.data.(*BoundMethod), other.data.(*BoundMethod)
		return a.Fn == b.Fn && a.Env == b.Env
	default:
		return v.data == other.data
	}
}
