package asm

import (
	"fmt"
	"strconv"
)

// RefKind distinguishes the dynamic subject reference forms.
type RefKind uint8

const (
	RefNone RefKind = iota
	RefRAG          // RAG:0x0A3
	RefTRM          // TRM:3
)

// Field is a KEY=VALUE modifier assignment.
type Field struct {
	Key   string
	Value string
}

// CalcForm is the syntactic shape of a CALC payload clause.
type CalcForm struct {
	Op    string
	A     float64
	B     float64
	Unary bool
}

// TimeForm is the syntactic shape of a TIME payload clause.
type TimeForm struct {
	Reference int64
	Delta     int64
	Unit      string
	TZ        int64
}

// Statement is one parsed instruction line. Names are still raw text at
// this stage; the assembler resolves them against the code tables.
type Statement struct {
	Action  string
	Subject string
	RefKind RefKind
	RefID   int64
	Fields  []Field
	Calc    *CalcForm
	Time    *TimeForm
	Line    int
}

// Parser parses tokens into statements.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// Parse parses all tokens into statements.
func (p *Parser) Parse() ([]Statement, error) {
	var statements []Statement

	for !p.atEOF() {
		if p.current().Type == TokenNewline {
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	tok := p.current()
	if tok.Type != TokenIdent {
		return Statement{}, fmt.Errorf("line %d: expected action mnemonic, got %s %q",
			tok.Line, tok.Type, tok.Value)
	}

	stmt := Statement{Action: tok.Value, Line: tok.Line}
	p.advance()
	p.skipCommas()

	// Optional subject. CALC always opens a payload clause; TIME does too,
	// but only when a number follows, since TIME is also a subject name.
	if tok := p.current(); tok.Type == TokenIdent && !p.atPayloadKeyword() {
		if p.peek().Type == TokenEquals {
			// KEY=VALUE with no subject
		} else {
			stmt.Subject = tok.Value
			p.advance()

			if p.current().Type == TokenColon {
				p.advance()
				id, err := p.expectInt("reference id")
				if err != nil {
					return Statement{}, err
				}
				switch stmt.Subject {
				case "RAG":
					stmt.RefKind = RefRAG
				case "TRM":
					stmt.RefKind = RefTRM
				default:
					return Statement{}, fmt.Errorf("line %d: unknown reference kind %q",
						stmt.Line, stmt.Subject)
				}
				stmt.RefID = id
				stmt.Subject = ""
			}
			p.skipCommas()
		}
	}

	// Modifier fields.
	for p.current().Type == TokenIdent && p.peek().Type == TokenEquals {
		key := p.current().Value
		p.advance() // key
		p.advance() // =

		val := p.current()
		if val.Type != TokenIdent {
			return Statement{}, fmt.Errorf("line %d: expected value after %s=, got %q",
				val.Line, key, val.Value)
		}
		stmt.Fields = append(stmt.Fields, Field{Key: key, Value: val.Value})
		p.advance()
		p.skipCommas()
	}

	// Optional payload clause.
	if p.atPayloadKeyword() {
		keyword := p.current().Value
		p.advance()

		var err error
		switch keyword {
		case "CALC":
			stmt.Calc, err = p.parseCalcForm()
		case "TIME":
			stmt.Time, err = p.parseTimeForm()
		}
		if err != nil {
			return Statement{}, err
		}
	}

	// Statement must end the line.
	if tok := p.current(); tok.Type != TokenNewline && tok.Type != TokenEOF {
		return Statement{}, fmt.Errorf("line %d: unexpected %s %q at end of statement",
			tok.Line, tok.Type, tok.Value)
	}
	if p.current().Type == TokenNewline {
		p.advance()
	}

	return stmt, nil
}

// atPayloadKeyword reports whether the current token opens a payload
// clause. CALC is unambiguous; TIME collides with the subject name and is
// only a clause when followed by its reference timestamp.
func (p *Parser) atPayloadKeyword() bool {
	tok := p.current()
	if tok.Type != TokenIdent {
		return false
	}
	switch tok.Value {
	case "CALC":
		return true
	case "TIME":
		return p.peek().Type == TokenInt
	}
	return false
}

func (p *Parser) parseCalcForm() (*CalcForm, error) {
	op := p.current()
	if op.Type != TokenIdent {
		return nil, fmt.Errorf("line %d: expected operation after CALC, got %q",
			op.Line, op.Value)
	}
	p.advance()

	a, err := p.expectNumber("operand")
	if err != nil {
		return nil, err
	}

	form := &CalcForm{Op: op.Value, A: a, Unary: true}

	// Second operand is optional for unary operations.
	if p.numberAhead() {
		b, err := p.expectNumber("operand")
		if err != nil {
			return nil, err
		}
		form.B = b
		form.Unary = false
	}

	return form, nil
}

func (p *Parser) parseTimeForm() (*TimeForm, error) {
	ref, err := p.expectInt("reference timestamp")
	if err != nil {
		return nil, err
	}
	delta, err := p.expectInt("delta")
	if err != nil {
		return nil, err
	}

	unit := p.current()
	if unit.Type != TokenIdent {
		return nil, fmt.Errorf("line %d: expected time unit, got %q", unit.Line, unit.Value)
	}
	p.advance()

	form := &TimeForm{Reference: ref, Delta: delta, Unit: unit.Value}

	// Trailing timezone offset is optional and defaults to UTC.
	if p.current().Type == TokenInt {
		tz, err := p.expectInt("timezone offset")
		if err != nil {
			return nil, err
		}
		form.TZ = tz
	}

	return form, nil
}

func (p *Parser) expectInt(what string) (int64, error) {
	tok := p.current()
	if tok.Type != TokenInt {
		return 0, fmt.Errorf("line %d: expected %s, got %q", tok.Line, what, tok.Value)
	}
	v, err := strconv.ParseInt(tok.Value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", tok.Line, what, tok.Value)
	}
	p.advance()
	return v, nil
}

func (p *Parser) expectNumber(what string) (float64, error) {
	tok := p.current()
	var v float64
	var err error
	switch tok.Type {
	case TokenInt:
		var n int64
		n, err = strconv.ParseInt(tok.Value, 0, 64)
		v = float64(n)
	case TokenFloat:
		v, err = strconv.ParseFloat(tok.Value, 64)
	case TokenIdent:
		// Non-finite operand spellings: NaN, Inf
		v, err = strconv.ParseFloat(tok.Value, 64)
	default:
		return 0, fmt.Errorf("line %d: expected %s, got %q", tok.Line, what, tok.Value)
	}
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", tok.Line, what, tok.Value)
	}
	p.advance()
	return v, nil
}

// numberAhead reports whether the current token can start a calc operand,
// including the NaN and Inf ident spellings.
func (p *Parser) numberAhead() bool {
	tok := p.current()
	switch tok.Type {
	case TokenInt, TokenFloat:
		return true
	case TokenIdent:
		_, err := strconv.ParseFloat(tok.Value, 64)
		return err == nil
	}
	return false
}

func (p *Parser) skipCommas() {
	for p.current().Type == TokenComma {
		p.advance()
	}
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) atEOF() bool {
	return p.current().Type == TokenEOF
}
