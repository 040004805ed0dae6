package lox

func (exec *Execution) evalExpression(expr Expression, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *Identifier:
		val, ok := env.Get(e.Name)
		if !ok {
			return NewNil(), exec.errorAt(e.Pos(), "undefined variable %q", e.Name)
		}
		return val, nil
	case *NumberLiteral:
		return NewNumber(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NilLiteral:
		return NewNil(), nil
	case *GroupingExpr:
		return exec.evalExpression(e.Expr, env)
	case *AssignExpr:
		val, err := exec.evalExpression(e.Value, env)
		if err != nil {
			return NewNil(), err
		}
		if !env.Assign(e.Name, val) {
			return NewNil(), exec.errorAt(e.Pos(), "undefined variable %q", e.Name)
		}
		return val, nil
	case *UnaryExpr:
		return exec.evalUnaryExpression(e, env)
	case *BinaryExpr:
		return exec.evalBinaryExpression(e, env)
	case *LogicalExpr:
		return exec.evalLogicalExpression(e, env)
	case *TernaryExpr:
		condition, err := exec.evalExpression(e.Cond, env)
		if err != nil {
			return NewNil(), err
		}
		if condition.Truthy() {
			return exec.evalExpression(e.Then, env)
		}
		return exec.evalExpression(e.Else, env)
	case *ThisExpr:
		val, ok := env.Get("this")
		if !ok {
			return NewNil(), exec.errorAt(e.Pos(), "this used outside of a method")
		}
		return val, nil
	case *CallExpr:
		return exec.evalCallExpression(e, env)
	case *GetExpr:
		object, err := exec.evalExpression(e.Object, env)
		if err != nil {
			return NewNil(), err
		}
		return exec.getMember(object, e.Property, e.Pos())
	case *SetExpr:
		return exec.evalSetExpression(e, env)
	default:
		return NewNil(), exec.errorAt(expr.Pos(), "unsupported expression")
	}
}

func (exec *Execution) evalUnaryExpression(expr *UnaryExpr, env *Env) (Value, error) {
	operand, err := exec.evalExpression(expr.Right, env)
	if err != nil {
		return NewNil(), err
	}
	switch expr.Operator {
	case tokenMinus:
		if operand.Kind() != KindNumber {
			return NewNil(), exec.errorAt(expr.Pos(), "operand to %q must be a number, got %s", "-", operand.Kind())
		}
		return NewNumber(-operand.Number()), nil
	case tokenBang:
		return NewBool(!operand.Truthy()), nil
	default:
		return NewNil(), exec.errorAt(expr.Pos(), "unsupported unary operator %q", string(expr.Operator))
	}
}

func (exec *Execution) evalBinaryExpression(expr *BinaryExpr, env *Env) (Value, error) {
	left, err := exec.evalExpression(expr.Left, env)
	if err != nil {
		return NewNil(), err
	}
	right, err := exec.evalExpression(expr.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch expr.Operator {
	case tokenEQ:
		return NewBool(left.Equal(right)), nil
	case tokenNotEQ:
		return NewBool(!left.Equal(right)), nil
	case tokenPlus:
		if left.Kind() == KindNumber && right.Kind() == KindNumber {
			return NewNumber(left.Number() + right.Number()), nil
		}
		if left.Kind() == KindString && right.Kind() == KindString {
			return NewString(left.Str() + right.Str()), nil
		}
		return NewNil(), exec.errorAt(expr.Pos(),
			"operands to %q must be two numbers or two strings, got %s and %s", "+", left.Kind(), right.Kind())
	}

	if left.Kind() != KindNumber || right.Kind() != KindNumber {
		return NewNil(), exec.errorAt(expr.Pos(),
			"operands to %q must be numbers, got %s and %s", string(expr.Operator), left.Kind(), right.Kind())
	}

	a, b := left.Number(), right.Number()
	switch expr.Operator {
	case tokenMinus:
		return NewNumber(a - b), nil
	case tokenAsterisk:
		return NewNumber(a * b), nil
	case tokenSlash:
		// IEEE 754 semantics: dividing by zero yields an infinity or NaN
		// rather than an error.
		return NewNumber(a / b), nil
	case tokenLT:
		return NewBool(a < b), nil
	case tokenLTE:
		return NewBool(a <= b), nil
	case tokenGT:
		return NewBool(a > b), nil
	case tokenGTE:
		return NewBool(a >= b), nil
	default:
		return NewNil(), exec.errorAt(expr.Pos(), "unsupported binary operator %q", string(expr.Operator))
	}
}

// evalLogicalExpression yields an operand value, not a coerced boolean, and
// never evaluates the right operand when the left one decides.
func (exec *Execution) evalLogicalExpression(expr *LogicalExpr, env *Env) (Value, error) {
	left, err := exec.evalExpression(expr.Left, env)
	if err != nil {
		return NewNil(), err
	}
	if expr.Operator == tokenOr {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return exec.evalExpression(expr.Right, env)
}
