package lox

import "fmt"

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenVar:
		return p.parseVarStatement()
	case tokenFun:
		return p.parseFunctionStatement()
	case tokenClass:
		return p.parseClassStatement()
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenLBrace:
		return p.parseBlockStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenFor:
		return p.parseForStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenBreak:
		return p.parseBreakStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseVarStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := p.curToken.Literal

	var initializer Expression
	if p.peekToken.Type == tokenAssign {
		p.nextToken()
		p.nextToken()
		initializer = p.parseExpression(lowestPrec)
		if initializer == nil {
			return nil
		}
	}

	if !p.expectPeek(tokenSemicolon) {
		return nil
	}
	return &VarStmt{Name: name, Initializer: initializer, position: pos}
}

func (p *parser) parseFunctionStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	fn := p.parseFunctionRest(pos)
	if fn == nil {
		return nil
	}
	return fn
}

// parseFunctionRest parses name, parameter list, and body with curToken on
// the name. Methods reuse it without the fun keyword.
func (p *parser) parseFunctionRest(pos Position) *FunctionStmt {
	name := p.curToken.Literal

	if !p.expectPeek(tokenLParen) {
		return nil
	}

	params := []string{}
	if p.peekToken.Type == tokenRParen {
		p.nextToken()
	} else {
		p.nextToken()
		for {
			if p.curToken.Type != tokenIdent {
				p.errorExpected(p.curToken, "parameter name")
				return nil
			}
			param := p.curToken.Literal
			for _, existing := range params {
				if existing == param {
					p.addParseError(p.curToken.Pos, fmt.Sprintf("duplicate parameter %q", param))
					return nil
				}
			}
			params = append(params, param)
			if p.peekToken.Type != tokenComma {
				break
			}
			p.nextToken()
			p.nextToken()
		}
		if !p.expectPeek(tokenRParen) {
			return nil
		}
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	body, ok := p.parseBlockBody()
	if !ok {
		return nil
	}
	return &FunctionStmt{Name: name, Params: params, Body: body, position: pos}
}

func (p *parser) parseClassStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	methods := []*FunctionStmt{}
	for p.peekToken.Type != tokenRBrace && p.peekToken.Type != tokenEOF {
		p.nextToken()
		if p.curToken.Type != tokenIdent {
			p.errorExpected(p.curToken, "method name")
			return nil
		}
		method := p.parseFunctionRest(p.curToken.Pos)
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}

	if !p.expectPeek(tokenRBrace) {
		return nil
	}
	return &ClassStmt{Name: name, Methods: methods, position: pos}
}

func (p *parser) parsePrintStatement() Statement {
	pos := p.curToken.Pos
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenSemicolon) {
		return nil
	}
	return &PrintStmt{Expr: expr, position: pos}
}

func (p *parser) parseBlockStatement() Statement {
	pos := p.curToken.Pos
	stmts, ok := p.parseBlockBody()
	if !ok {
		return nil
	}
	return &BlockStmt{Statements: stmts, position: pos}
}

// parseBlockBody consumes the statements between braces with curToken on the
// opening brace, leaving curToken on the closing one.
func (p *parser) parseBlockBody() ([]Statement, bool) {
	stmts := []Statement{}
	p.nextToken()
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt == nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
		p.nextToken()
	}
	if p.curToken.Type != tokenRBrace {
		p.errorExpected(p.curToken, `"}"`)
		return nil, false
	}
	return stmts, true
}

func (p *parser) parseIfStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	p.nextToken()
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	// else binds to the nearest if
	var alt Statement
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		p.nextToken()
		alt = p.parseStatement()
		if alt == nil {
			return nil
		}
	}
	return &IfStmt{Condition: condition, Then: then, Else: alt, position: pos}
}

func (p *parser) parseWhileStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileStmt{Condition: condition, Body: body, position: pos}
}

// parseForStatement desugars the three-clause for into a while loop before
// the evaluator ever sees it. A missing condition loops forever; the
// increment runs after the body inside the same iteration.
func (p *parser) parseForStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	var initializer Statement
	switch p.peekToken.Type {
	case tokenSemicolon:
		p.nextToken()
	case tokenVar:
		p.nextToken()
		initializer = p.parseVarStatement()
		if initializer == nil {
			return nil
		}
	default:
		p.nextToken()
		initializer = p.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	var condition Expression
	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
	} else {
		p.nextToken()
		condition = p.parseExpression(lowestPrec)
		if condition == nil {
			return nil
		}
		if !p.expectPeek(tokenSemicolon) {
			return nil
		}
	}

	var increment Expression
	if p.peekToken.Type == tokenRParen {
		p.nextToken()
	} else {
		p.nextToken()
		increment = p.parseExpression(lowestPrec)
		if increment == nil {
			return nil
		}
		if !p.expectPeek(tokenRParen) {
			return nil
		}
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	if increment != nil {
		body = &BlockStmt{
			Statements: []Statement{body, &ExprStmt{Expr: increment, position: increment.Pos()}},
			position:   body.Pos(),
		}
	}
	if condition == nil {
		condition = &BoolLiteral{Value: true, position: pos}
	}
	var loop Statement = &WhileStmt{Condition: condition, Body: body, position: pos}
	if initializer != nil {
		loop = &BlockStmt{Statements: []Statement{initializer, loop}, position: pos}
	}
	return loop
}

func (p *parser) parseReturnStatement() Statement {
	pos := p.curToken.Pos
	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
		return &ReturnStmt{position: pos}
	}
	p.nextToken()
	value := p.parseExpression(lowestPrec)
	if value == nil {
		return nil
	}
	if !p.expectPeek(tokenSemicolon) {
		return nil
	}
	return &ReturnStmt{Value: value, position: pos}
}

func (p *parser) parseBreakStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenSemicolon) {
		return nil
	}
	return &BreakStmt{position: pos}
}

func (p *parser) parseExpressionStatement() Statement {
	pos := p.curToken.Pos
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenSemicolon) {
		return nil
	}
	return &ExprStmt{Expr: expr, position: pos}
}
