package lox

// Function is a user-defined function closing over the environment that was
// active at its declaration.
type Function struct {
	Name   string
	Params []string
	Body   []Statement
	Pos    Position
	Env    *Env
}

type ClassDef struct {
	Name    string
	Methods map[string]*Function
	Pos     Position
}

type Instance struct {
	Class  *ClassDef
	Fields map[string]Value
}

// BoundMethod pairs a method with an environment in which "this" is already
// bound to the receiver. The pairing is fixed at property-access time and
// never changes afterward.
type BoundMethod struct {
	Fn  *Function
	Env *Env
}

func newInstance(class *ClassDef) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

// bindMethod pins the receiver: the returned value carries a child of the
// method's closure environment with "this" defined in it.
func bindMethod(fn *Function, receiver Value) Value {
	env := newEnv(fn.Env)
	env.bind("this", receiver)
	return newBoundMethod(fn, env)
}
