package lexpr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SyntaxError reports malformed S-expression input.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lexpr: %s at offset %d", e.Msg, e.Offset)
}

// Parse reads a single S-expression into generic Go values.
//
// Association lists, lists whose every element is a pair keyed by a symbol
// (or a dotted pair keyed by any atom), become maps. Other lists and
// #(...) vectors become []any, symbols become strings and #nil becomes nil.
func Parse(data []byte) (any, error) {
	p := &parser{data: data}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.data) {
		return nil, p.errorf("trailing characters")
	}
	return convert(v)
}

type (
	symbol  string
	nilAtom struct{}
	vector  []any
)

// list is a parsed list. A dotted list carries its final cdr in tail.
type list struct {
	items  []any
	tail   any
	dotted bool
}

// maxDepth bounds nesting so deeply nested input fails instead of exhausting the stack.
const maxDepth = 512

type parser struct {
	data  []byte
	pos   int
	depth int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Offset: p.pos}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch c := p.data[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			p.pos++
		case c == ';':
			for !p.eof() && p.data[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) value() (any, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, p.errorf("nesting exceeds %d levels", maxDepth)
	}
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.peek(); c {
	case '(':
		p.pos++
		return p.list()
	case ')':
		return nil, p.errorf("unexpected ')'")
	case '"':
		return p.str()
	case '#':
		return p.hash()
	}
	return p.atom()
}

func (p *parser) list() (any, error) {
	l := &list{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unclosed list")
		}
		if p.peek() == ')' {
			p.pos++
			return l, nil
		}
		if p.peek() == '.' && p.pos+1 < len(p.data) && isDelimiter(p.data[p.pos+1]) {
			if len(l.items) == 0 {
				return nil, p.errorf("dot at start of list")
			}
			p.pos++
			tail, err := p.value()
			if err != nil {
				return nil, err
			}
			p.skipSpace()
			if p.peek() != ')' {
				return nil, p.errorf("expected ')' after dotted tail")
			}
			p.pos++
			if rest, ok := tail.(*list); ok {
				l.items = append(l.items, rest.items...)
				l.tail, l.dotted = rest.tail, rest.dotted
			} else {
				l.tail, l.dotted = tail, true
			}
			return l, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, v)
	}
}

func (p *parser) str() (any, error) {
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.data[p.pos]
		p.pos++
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			if p.eof() {
				return nil, p.errorf("unterminated escape")
			}
			e := p.data[p.pos]
			p.pos++
			switch e {
			case '"', '\\':
				sb.WriteByte(e)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'a':
				sb.WriteByte('\a')
			case '0':
				sb.WriteByte(0)
			default:
				return nil, p.errorf("invalid escape \\%c", e)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (p *parser) hash() (any, error) {
	rest := string(p.data[p.pos:])
	switch {
	case strings.HasPrefix(rest, "#u8("):
		p.pos += 4
		return p.bytes()
	case strings.HasPrefix(rest, "#("):
		p.pos += 2
		v, err := p.list()
		if err != nil {
			return nil, err
		}
		l := v.(*list)
		if l.dotted {
			return nil, p.errorf("dotted vector")
		}
		return vector(l.items), nil
	}
	start := p.pos
	tok := p.token()
	switch tok {
	case "#t", "#true":
		return true, nil
	case "#f", "#false":
		return false, nil
	case "#nil":
		return nilAtom{}, nil
	}
	p.pos = start
	return nil, p.errorf("unknown syntax %q", tok)
}

func (p *parser) bytes() (any, error) {
	out := []byte{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unclosed byte vector")
		}
		if p.peek() == ')' {
			p.pos++
			return out, nil
		}
		tok := p.token()
		n, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, p.errorf("invalid byte %q", tok)
		}
		out = append(out, byte(n))
	}
}

func (p *parser) token() string {
	start := p.pos
	for !p.eof() && !isDelimiter(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

func (p *parser) atom() (any, error) {
	start := p.pos
	tok := p.token()
	if tok == "" {
		return nil, p.errorf("unexpected character %q", p.peek())
	}
	if n, ok := parseNumber(tok); ok {
		return n, nil
	}
	for i := 0; i < len(tok); i++ {
		if !isSymbolChar(tok[i]) {
			p.pos = start + i
			return nil, p.errorf("invalid symbol character %q", tok[i])
		}
	}
	return symbol(tok), nil
}

// parseNumber reads integers, falling back to uint64 and then float64.
func parseNumber(tok string) (any, bool) {
	switch tok {
	case "+nan.0", "-nan.0":
		return math.NaN(), true
	case "+inf.0":
		return math.Inf(1), true
	case "-inf.0":
		return math.Inf(-1), true
	}
	digits := strings.TrimLeft(tok, "+-")
	if digits == "" || len(tok)-len(digits) > 1 {
		return nil, false
	}
	if !isDigit(digits[0]) && !(digits[0] == '.' && len(digits) > 1 && isDigit(digits[1])) {
		return nil, false
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n, true
	}
	if n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, true
	}
	return nil, false
}

// convert lowers parsed syntax to the generic values Assign understands.
func convert(v any) (any, error) {
	switch x := v.(type) {
	case symbol:
		return string(x), nil
	case nilAtom:
		return nil, nil
	case vector:
		return convertItems(x)
	case *list:
		if x.dotted {
			return nil, &SyntaxError{Msg: "dotted pair outside association list"}
		}
		if isAlist(x) {
			return convertAlist(x)
		}
		return convertItems(x.items)
	}
	return v, nil
}

func convertItems(items []any) (any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func isAlist(l *list) bool {
	if len(l.items) == 0 {
		return false
	}
	for _, item := range l.items {
		entry, ok := item.(*list)
		if !ok || len(entry.items) == 0 {
			return false
		}
		if entry.dotted {
			if len(entry.items) != 1 {
				return false
			}
			switch entry.items[0].(type) {
			case *list, vector, []byte:
				return false
			}
			continue
		}
		if _, ok := entry.items[0].(symbol); !ok {
			return false
		}
	}
	return true
}

func convertAlist(l *list) (any, error) {
	keys := make([]any, len(l.items))
	values := make([]any, len(l.items))
	allStrings := true
	for i, item := range l.items {
		entry := item.(*list)
		k, err := convert(entry.items[0])
		if err != nil {
			return nil, err
		}
		if _, ok := k.(string); !ok {
			allStrings = false
		}
		var raw any
		if entry.dotted {
			raw = entry.tail
		} else {
			raw = &list{items: entry.items[1:]}
		}
		v, err := convert(raw)
		if err != nil {
			return nil, err
		}
		keys[i], values[i] = k, v
	}

	if allStrings {
		out := make(map[string]any, len(keys))
		for i, k := range keys {
			out[k.(string)] = values[i]
		}
		return out, nil
	}
	out := make(map[any]any, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '(', ')', '"', ';':
		return true
	}
	return false
}

func isSymbolChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) {
		return true
	}
	return strings.IndexByte("!$%&*+-./:<=>?@^_~", c) >= 0
}
