package ron

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/serde/internal/tree"
)

type printer struct {
	buf    bytes.Buffer
	pretty bool
	indent string
	depth  int
}

func (p *printer) value(v any) error {
	switch x := v.(type) {
	case nil:
		p.buf.WriteString("None")
	case bool:
		p.buf.WriteString(strconv.FormatBool(x))
	case int64:
		p.buf.WriteString(strconv.FormatInt(x, 10))
	case uint64:
		p.buf.WriteString(strconv.FormatUint(x, 10))
	case float64:
		p.buf.WriteString(tree.FormatFloat(x))
	case string:
		quote(&p.buf, x)
	case []byte:
		quote(&p.buf, base64.StdEncoding.EncodeToString(x))
	case []any:
		return p.group('[', ']', len(x), func(i int) error {
			return p.value(x[i])
		})
	case tree.Map:
		return p.group('{', '}', len(x), func(i int) error {
			if err := p.value(x[i].Key); err != nil {
				return err
			}
			p.colon()
			return p.value(x[i].Value)
		})
	case tree.Struct:
		return p.group('(', ')', len(x.Fields), func(i int) error {
			p.buf.WriteString(x.Fields[i].Name)
			p.colon()
			return p.value(x.Fields[i].Value)
		})
	default:
		return fmt.Errorf("ron: cannot encode %T", v)
	}
	return nil
}

// group writes a delimited, comma separated run of n items.
// Pretty output puts each item on its own line with a trailing comma.
func (p *printer) group(open, close byte, n int, item func(i int) error) error {
	p.buf.WriteByte(open)
	if n == 0 {
		p.buf.WriteByte(close)
		return nil
	}
	p.depth++
	for i := 0; i < n; i++ {
		if p.pretty {
			p.newline()
		} else if i > 0 {
			p.buf.WriteByte(',')
		}
		if err := item(i); err != nil {
			return err
		}
		if p.pretty {
			p.buf.WriteByte(',')
		}
	}
	p.depth--
	if p.pretty {
		p.newline()
	}
	p.buf.WriteByte(close)
	return nil
}

func (p *printer) colon() {
	p.buf.WriteByte(':')
	if p.pretty {
		p.buf.WriteByte(' ')
	}
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(strings.Repeat(p.indent, p.depth))
}

func quote(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\'':
			buf.WriteString(`\'`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case 0:
			buf.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(buf, `\u{%x}`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
