package lox

func (exec *Execution) evalCallExpression(expr *CallExpr, env *Env) (Value, error) {
	callee, err := exec.evalExpression(expr.Callee, env)
	if err != nil {
		return NewNil(), err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := exec.evalExpression(argExpr, env)
		if err != nil {
			return NewNil(), err
		}
		args = append(args, arg)
	}

	return exec.invokeCallable(callee, args, expr.Pos())
}

func (exec *Execution) invokeCallable(callee Value, args []Value, pos Position) (Value, error) {
	switch callee.Kind() {
	case KindFunction:
		fn := callee.Function()
		return exec.callFunction(fn, fn.Env, args, pos)
	case KindBoundMethod:
		bound := callee.BoundMethod()
		return exec.callFunction(bound.Fn, bound.Env, args, pos)
	case KindClass:
		return exec.construct(callee.Class(), args, pos)
	default:
		return NewNil(), exec.errorAt(pos, "attempted to call non-callable value of kind %s", callee.Kind())
	}
}

// callFunction runs fn in a fresh child of closure. The loop depth is reset
// for the duration of the call so a break inside the callee can never unwind
// a loop in the caller.
func (exec *Execution) callFunction(fn *Function, closure *Env, args []Value, pos Position) (Value, error) {
	if len(args) != len(fn.Params) {
		return NewNil(), exec.errorAt(pos, "%s expects %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}

	callEnv := newEnv(closure)
	for i, param := range fn.Params {
		callEnv.bind(param, args[i])
	}

	if err := exec.pushFrame(fn.Name, pos); err != nil {
		return NewNil(), err
	}
	savedLoopDepth := exec.loopDepth
	exec.loopDepth = 0

	val, returned, err := exec.evalStatements(fn.Body, callEnv)

	exec.loopDepth = savedLoopDepth
	exec.popFrame()

	if err != nil {
		return NewNil(), err
	}
	if returned {
		return val, nil
	}
	return NewNil(), nil
}

// construct makes a fresh instance and runs init on it when the class
// declares one. Whatever init returns is discarded; calling a class always
// yields the instance.
func (exec *Execution) construct(class *ClassDef, args []Value, pos Position) (Value, error) {
	instance := NewInstance(newInstance(class))

	initFn, ok := class.Methods["init"]
	if !ok {
		if len(args) != 0 {
			return NewNil(), exec.errorAt(pos, "%s expects 0 arguments, got %d", class.Name, len(args))
		}
		return instance, nil
	}

	bound := bindMethod(initFn, instance).BoundMethod()
	if _, err := exec.callFunction(bound.Fn, bound.Env, args, pos); err != nil {
		return NewNil(), err
	}
	return instance, nil
}

// getMember resolves a property read: fields shadow methods, and a method hit
// produces a fresh bound method whose receiver is pinned here and now.
func (exec *Execution) getMember(object Value, property string, pos Position) (Value, error) {
	if object.Kind() != KindInstance {
		return NewNil(), exec.errorAt(pos, "cannot read property %q of %s", property, object.Kind())
	}
	instance := object.Instance()
	if val, ok := instance.Fields[property]; ok {
		return val, nil
	}
	if fn, ok := instance.Class.Methods[property]; ok {
		return bindMethod(fn, object), nil
	}
	return NewNil(), exec.errorAt(pos, "undefined property %q", property)
}

func (exec *Execution) evalSetExpression(expr *SetExpr, env *Env) (Value, error) {
	object, err := exec.evalExpression(expr.Object, env)
	if err != nil {
		return NewNil(), err
	}
	if object.Kind() != KindInstance {
		return NewNil(), exec.errorAt(expr.Pos(), "cannot set property %q on %s", expr.Property, object.Kind())
	}
	val, err := exec.evalExpression(expr.Value, env)
	if err != nil {
		return NewNil(), err
	}
	object.Instance().Fields[expr.Property] = val
	return val, nil
}
