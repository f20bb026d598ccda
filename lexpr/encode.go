package lexpr

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/zoobzio/serde/internal/tree"
)

type printer struct {
	buf bytes.Buffer
}

func (p *printer) value(v any) error {
	switch x := v.(type) {
	case nil:
		p.buf.WriteString("#nil")
	case bool:
		if x {
			p.buf.WriteString("#t")
		} else {
			p.buf.WriteString("#f")
		}
	case int64:
		p.buf.WriteString(strconv.FormatInt(x, 10))
	case uint64:
		p.buf.WriteString(strconv.FormatUint(x, 10))
	case float64:
		p.float(x)
	case string:
		quote(&p.buf, x)
	case []byte:
		p.buf.WriteString("#u8(")
		for i, b := range x {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			p.buf.WriteString(strconv.Itoa(int(b)))
		}
		p.buf.WriteByte(')')
	case []any:
		return p.list(x)
	case tree.Map:
		p.buf.WriteByte('(')
		for i, e := range x {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			if err := p.pair(e.Key, e.Value); err != nil {
				return err
			}
		}
		p.buf.WriteByte(')')
	case tree.Struct:
		p.buf.WriteByte('(')
		for i, f := range x.Fields {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			if err := p.pair(f.Name, f.Value); err != nil {
				return err
			}
		}
		p.buf.WriteByte(')')
	default:
		return fmt.Errorf("lexpr: cannot encode %T", v)
	}
	return nil
}

func (p *printer) list(items []any) error {
	p.buf.WriteByte('(')
	for i, item := range items {
		if i > 0 {
			p.buf.WriteByte(' ')
		}
		if err := p.value(item); err != nil {
			return err
		}
	}
	p.buf.WriteByte(')')
	return nil
}

// pair writes one association list entry. Symbol keys with a list value
// use the collapsed (key a b) form; any other key is written with an
// explicit dot and a vector for list values, so the entry stays a pair.
func (p *printer) pair(key, value any) error {
	p.buf.WriteByte('(')
	if name, ok := key.(string); ok && isSymbol(name) {
		p.buf.WriteString(name)
		if items, ok := value.([]any); ok {
			for _, item := range items {
				p.buf.WriteByte(' ')
				if err := p.value(item); err != nil {
					return err
				}
			}
			p.buf.WriteByte(')')
			return nil
		}
	} else if err := p.value(key); err != nil {
		return err
	}

	p.buf.WriteString(" . ")
	if items, ok := value.([]any); ok {
		p.buf.WriteByte('#')
		if err := p.list(items); err != nil {
			return err
		}
	} else if err := p.value(value); err != nil {
		return err
	}
	p.buf.WriteByte(')')
	return nil
}

func (p *printer) float(f float64) {
	switch {
	case math.IsNaN(f):
		p.buf.WriteString("+nan.0")
	case math.IsInf(f, 1):
		p.buf.WriteString("+inf.0")
	case math.IsInf(f, -1):
		p.buf.WriteString("-inf.0")
	default:
		p.buf.WriteString(tree.FormatFloat(f))
	}
}

func quote(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

// isSymbol reports whether name can be written as a bare symbol and read
// back as the same symbol rather than a number or keyword.
func isSymbol(name string) bool {
	if name == "" || name == "." {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isSymbolChar(name[i]) {
			return false
		}
	}
	_, isNum := parseNumber(name)
	return !isNum
}
