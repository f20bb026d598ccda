package ron

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports malformed RON input.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ron: %s at offset %d", e.Msg, e.Offset)
}

// Parse reads a single RON value into generic Go values.
//
// Named-field tuples become map[string]any, sequences and tuples []any,
// maps map[string]any (or map[any]any for non-string keys), None nil and
// Some(x) x. Bare identifiers such as unit enum variants become strings.
func Parse(data []byte) (any, error) {
	p := &parser{data: data}
	if err := p.skipAttributes(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.pos != len(p.data) {
		return nil, p.errorf("trailing characters")
	}
	return v, nil
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

func (p *parser) peek() byte {
	if p.pos < len(p.data) {
		return p.data[p.pos]
	}
	return 0
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

// skipSpace skips whitespace, line comments and nested block comments.
func (p *parser) skipSpace() error {
	for !p.eof() {
		switch c := p.data[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/':
			for !p.eof() && p.data[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '*':
			start := p.pos
			p.pos += 2
			depth := 1
			for depth > 0 {
				if p.pos+1 >= len(p.data) {
					p.pos = start
					return p.errorf("unclosed block comment")
				}
				switch {
				case p.data[p.pos] == '/' && p.data[p.pos+1] == '*':
					depth++
					p.pos += 2
				case p.data[p.pos] == '*' && p.data[p.pos+1] == '/':
					depth--
					p.pos += 2
				default:
					p.pos++
				}
			}
		default:
			return nil
		}
	}
	return nil
}

// skipAttributes skips leading #![enable(...)] extension attributes.
func (p *parser) skipAttributes() error {
	for {
		if err := p.skipSpace(); err != nil {
			return err
		}
		if !strings.HasPrefix(string(p.data[p.pos:]), "#!") {
			return nil
		}
		end := strings.IndexByte(string(p.data[p.pos:]), ']')
		if end < 0 {
			return p.errorf("unclosed attribute")
		}
		p.pos += end + 1
	}
}

// expect skips space and consumes c.
func (p *parser) expect(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.peek() != c {
		if p.eof() {
			return p.errorf("expected %q, found end of input", c)
		}
		return p.errorf("expected %q, found %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) value() (any, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, p.errorf("nesting exceeds %d levels", maxDepth)
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '(':
		return p.tuple("")
	case c == '[':
		return p.list()
	case c == '{':
		return p.mapping()
	case c == '"':
		return p.str()
	case c == '\'':
		return p.char()
	case c == 'r' && p.pos+1 < len(p.data) && (p.data[p.pos+1] == '"' || p.data[p.pos+1] == '#'):
		return p.rawString()
	case c == 'b' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '"':
		p.pos++
		s, err := p.str()
		if err != nil {
			return nil, err
		}
		return []byte(s.(string)), nil
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.identValue()
	}
	return nil, p.errorf("unexpected character %q", c)
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// identValue handles keywords, named structs and tuples, and unit variants.
func (p *parser) identValue() (any, error) {
	name := p.ident()
	switch name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "None":
		return nil, nil
	case "inf":
		return math.Inf(1), nil
	case "NaN":
		return math.NaN(), nil
	}
	save := p.pos
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.peek() == '(' {
		return p.tuple(name)
	}
	p.pos = save
	return name, nil
}

// tuple parses "(...)" after an optional name. Named fields produce a map,
// positional elements a slice. Some(x) and single-element named tuples
// collapse to their element; an empty anonymous tuple is unit.
func (p *parser) tuple(name string) (any, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.peek() == ')' {
		p.pos++
		if name == "" {
			return nil, nil
		}
		return []any{}, nil
	}
	if p.atFieldName() {
		return p.fields()
	}

	var items []any
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		done, err := p.separator(')')
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	if name != "" && len(items) == 1 {
		return items[0], nil
	}
	return items, nil
}

// atFieldName reports whether the input continues with "ident:".
func (p *parser) atFieldName() bool {
	save := p.pos
	defer func() { p.pos = save }()
	if !isIdentStart(p.peek()) {
		return false
	}
	p.ident()
	if p.skipSpace() != nil {
		return false
	}
	return p.peek() == ':' && (p.pos+1 >= len(p.data) || p.data[p.pos+1] != ':')
}

func (p *parser) fields() (any, error) {
	out := make(map[string]any)
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if !isIdentStart(p.peek()) {
			return nil, p.errorf("expected field name")
		}
		key := p.ident()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = v
		done, err := p.separator(')')
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
	}
}

func (p *parser) list() (any, error) {
	p.pos++
	items := []any{}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.peek() == ']' {
		p.pos++
		return items, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		done, err := p.separator(']')
		if err != nil {
			return nil, err
		}
		if done {
			return items, nil
		}
	}
}

func (p *parser) mapping() (any, error) {
	p.pos++
	var keys, values []any
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.peek() == '}' {
		p.pos++
		return map[string]any{}, nil
	}
	for {
		k, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		values = append(values, v)
		done, err := p.separator('}')
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	allStrings := true
	for _, k := range keys {
		if _, ok := k.(string); !ok {
			allStrings = false
			break
		}
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
		if k != nil && !reflect.TypeOf(k).Comparable() {
			return nil, p.errorf("map key of type %T is not hashable", k)
		}
		out[k] = values[i]
	}
	return out, nil
}

// separator consumes "," or the closing delimiter. A trailing comma before
// the delimiter is allowed. It reports whether the group is closed.
func (p *parser) separator(close byte) (bool, error) {
	if err := p.skipSpace(); err != nil {
		return false, err
	}
	switch p.peek() {
	case close:
		p.pos++
		return true, nil
	case ',':
		p.pos++
		if err := p.skipSpace(); err != nil {
			return false, err
		}
		if p.peek() == close {
			p.pos++
			return true, nil
		}
		return false, nil
	}
	if p.eof() {
		return false, p.errorf("expected ',' or %q, found end of input", close)
	}
	return false, p.errorf("expected ',' or %q, found %q", close, p.peek())
}

func (p *parser) str() (any, error) {
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.data[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			r, err := p.escape()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
		default:
			r, size := utf8.DecodeRune(p.data[p.pos:])
			sb.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) rawString() (any, error) {
	p.pos++
	hashes := 0
	for p.peek() == '#' {
		hashes++
		p.pos++
	}
	if p.peek() != '"' {
		return nil, p.errorf("expected '\"' in raw string")
	}
	p.pos++
	terminator := "\"" + strings.Repeat("#", hashes)
	end := strings.Index(string(p.data[p.pos:]), terminator)
	if end < 0 {
		return nil, p.errorf("unterminated raw string")
	}
	s := string(p.data[p.pos : p.pos+end])
	p.pos += end + len(terminator)
	return s, nil
}

func (p *parser) char() (any, error) {
	p.pos++
	var r rune
	if p.peek() == '\\' {
		var err error
		if r, err = p.escape(); err != nil {
			return nil, err
		}
	} else {
		var size int
		r, size = utf8.DecodeRune(p.data[p.pos:])
		if size == 0 {
			return nil, p.errorf("unterminated char")
		}
		p.pos += size
	}
	if p.peek() != '\'' {
		return nil, p.errorf("expected closing '\\'' for char")
	}
	p.pos++
	return string(r), nil
}

// escape decodes one backslash escape starting at the backslash.
func (p *parser) escape() (rune, error) {
	p.pos++
	if p.eof() {
		return 0, p.errorf("unterminated escape")
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case '"', '\'', '\\', '/':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case '0':
		return 0, nil
	case 'x':
		if p.pos+2 > len(p.data) {
			return 0, p.errorf("short \\x escape")
		}
		n, err := strconv.ParseUint(string(p.data[p.pos:p.pos+2]), 16, 8)
		if err != nil || n > 0x7f {
			return 0, p.errorf("invalid \\x escape")
		}
		p.pos += 2
		return rune(n), nil
	case 'u':
		var digits string
		if p.peek() == '{' {
			end := strings.IndexByte(string(p.data[p.pos:]), '}')
			if end < 0 {
				return 0, p.errorf("unterminated \\u{} escape")
			}
			digits = string(p.data[p.pos+1 : p.pos+end])
			p.pos += end + 1
		} else {
			if p.pos+4 > len(p.data) {
				return 0, p.errorf("short \\u escape")
			}
			digits = string(p.data[p.pos : p.pos+4])
			p.pos += 4
		}
		n, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, p.errorf("invalid unicode escape %q", digits)
		}
		return rune(n), nil
	}
	return 0, p.errorf("invalid escape \\%c", c)
}

func (p *parser) number() (any, error) {
	start := p.pos
	neg := false
	if c := p.peek(); c == '-' || c == '+' {
		neg = c == '-'
		p.pos++
	}
	if strings.HasPrefix(string(p.data[p.pos:]), "inf") {
		p.pos += 3
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	if p.peek() == '0' && p.pos+1 < len(p.data) {
		base := 0
		switch p.data[p.pos+1] {
		case 'x':
			base = 16
		case 'b':
			base = 2
		case 'o':
			base = 8
		}
		if base != 0 {
			p.pos += 2
			digitsStart := p.pos
			for !p.eof() && (isHexDigit(p.data[p.pos]) || p.data[p.pos] == '_') {
				p.pos++
			}
			digits := strings.ReplaceAll(string(p.data[digitsStart:p.pos]), "_", "")
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return nil, &SyntaxError{Msg: err.Error(), Offset: start}
			}
			return signed(n, neg, start)
		}
	}

	isFloat := false
scan:
	for !p.eof() {
		c := p.data[p.pos]
		switch {
		case isDigit(c) || c == '_':
		case c == '.':
			isFloat = true
		case c == 'e' || c == 'E':
			isFloat = true
			if p.pos+1 < len(p.data) && (p.data[p.pos+1] == '+' || p.data[p.pos+1] == '-') {
				p.pos++
			}
		default:
			break scan
		}
		p.pos++
	}
	text := strings.ReplaceAll(string(p.data[start:p.pos]), "_", "")
	text = strings.TrimPrefix(text, "+")
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &SyntaxError{Msg: "invalid float " + strconv.Quote(text), Offset: start}
		}
		return f, nil
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, &SyntaxError{Msg: "invalid integer " + strconv.Quote(text), Offset: start}
	}
	return n, nil
}

func signed(n uint64, neg bool, offset int) (any, error) {
	if !neg {
		if n <= math.MaxInt64 {
			return int64(n), nil
		}
		return n, nil
	}
	if n > 1<<63 {
		return nil, &SyntaxError{Msg: "integer out of range", Offset: offset}
	}
	return -int64(n), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
