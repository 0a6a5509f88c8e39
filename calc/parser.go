package calc

import (
	"github.com/pkg/errors"
)

type (
	expr interface {
		position() int
	}

	setLiteral struct {
		values []int
		pos    int
	}

	identifier struct {
		name string
		pos  int
	}

	binary struct {
		op          tokenKind
		left, right expr
		pos         int
	}
)

func (e *setLiteral) position() int { return e.pos }
func (e *identifier) position() int { return e.pos }
func (e *binary) position() int     { return e.pos }

type (
	statement interface {
		isStatement()
	}

	// name = e, name += e, name -= e, name *= e
	assignment struct {
		name string
		op   tokenKind
		expr expr
	}

	comparison struct {
		op          tokenKind
		left, right expr
	}

	membership struct {
		value int
		set   expr
	}

	cardinality struct {
		set expr
	}

	evaluation struct {
		expr expr
	}
)

func (assignment) isStatement()  {}
func (comparison) isStatement()  {}
func (membership) isStatement()  {}
func (cardinality) isStatement() {}
func (evaluation) isStatement()  {}

type parser struct {
	tokens []token
	pos    int
}

func parse(input string) (statement, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) token {
	if i := p.pos + offset; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, unexpected(t, kind.String())
	}
	return p.advance(), nil
}

func unexpected(t token, want string) error {
	got := t.kind.String()
	if t.text != "" {
		got = "'" + t.text + "'"
	}
	return errors.Wrapf(ErrSyntax, "expected %s at %d, got %s", want, t.pos, got)
}

func (p *parser) statement() (statement, error) {
	t := p.peek()

	switch t.kind {
	case tokIdent:
		switch op := p.peekAt(1).kind; op {
		case tokAssign, tokPlusAssign, tokMinusAssign, tokStarAssign:
			p.advance()
			p.advance()
			e, err := p.setExpr()
			if err != nil {
				return nil, err
			}
			return assignment{name: t.text, op: op, expr: e}, nil
		}

	case tokHash:
		p.advance()
		e, err := p.setExpr()
		if err != nil {
			return nil, err
		}
		return cardinality{set: e}, nil

	case tokInt, tokMinus:
		v, err := p.integer()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokIn); err != nil {
			return nil, err
		}
		e, err := p.setExpr()
		if err != nil {
			return nil, err
		}
		return membership{value: v, set: e}, nil
	}

	left, err := p.setExpr()
	if err != nil {
		return nil, err
	}

	switch op := p.peek().kind; op {
	case tokLessEq, tokEq:
		p.advance()
		right, err := p.setExpr()
		if err != nil {
			return nil, err
		}
		return comparison{op: op, left: left, right: right}, nil
	}

	return evaluation{expr: left}, nil
}

// setExpr = term { ("+" | "-") term }
func (p *parser) setExpr() (expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.advance()

		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &binary{op: t.kind, left: left, right: right, pos: t.pos}
	}
}

// term = primary { "*" primary }
func (p *parser) term() (expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokStar {
		t := p.advance()
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		left = &binary{op: tokStar, left: left, right: right, pos: t.pos}
	}

	return left, nil
}

func (p *parser) primary() (expr, error) {
	t := p.peek()

	switch t.kind {
	case tokIdent:
		p.advance()
		return &identifier{name: t.text, pos: t.pos}, nil

	case tokLParen:
		p.advance()
		e, err := p.setExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return e, nil

	case tokLBrace:
		p.advance()
		lit := &setLiteral{pos: t.pos}
		for p.peek().kind != tokRBrace {
			if len(lit.values) > 0 && p.peek().kind == tokComma {
				p.advance()
			}
			v, err := p.integer()
			if err != nil {
				return nil, err
			}
			lit.values = append(lit.values, v)
		}
		p.advance()
		return lit, nil
	}

	return nil, unexpected(t, "set")
}

func (p *parser) integer() (int, error) {
	sign := 1
	if p.peek().kind == tokMinus {
		p.advance()
		sign = -1
	}

	t, err := p.expect(tokInt)
	if err != nil {
		return 0, err
	}
	return sign * t.num, nil
}
