package lox

// Env is one scope in the environment chain. Closures, bound methods, and
// active call frames share environments by pointer; a write through one
// holder is immediately visible to the rest.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Get resolves a name by walking from the innermost scope outward.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Define binds a name in this scope. It reports false when the name is
// already declared here; redeclaration in the same scope is an error the
// caller surfaces.
func (e *Env) Define(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		return false
	}
	e.values[name] = val
	return true
}

// Assign overwrites the nearest enclosing binding of name. It reports false
// when no scope in the chain declares the name; assignment never creates a
// binding.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}

// Names lists the bindings declared directly in this scope.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}

func (e *Env) bind(name string, val Value) {
	e.values[name] = val
}
