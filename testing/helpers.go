// Package testing provides shared fixtures for serde tests.
//
// Example mirrors the canonical JSON5 sample document and carries a tag for
// every codec. The reference payloads below are that document as written
// by other implementations of each format; tests decode them to check
// interoperability and compare against them where output is canonical.
package testing

// Example is the sample document used across codec tests.
type Example struct {
	Unquoted            string   `json:"unquoted" yaml:"unquoted" toml:"unquoted" xml:"unquoted" form:"unquoted" pickle:"unquoted"`
	SingleQuotes        string   `json:"singleQuotes" yaml:"singleQuotes" toml:"singleQuotes" xml:"singleQuotes" form:"singleQuotes" pickle:"singleQuotes"`
	LineBreaks          string   `json:"lineBreaks" yaml:"lineBreaks" toml:"lineBreaks" xml:"lineBreaks" form:"lineBreaks" pickle:"lineBreaks"`
	Hexadecimal         int32    `json:"hexadecimal" yaml:"hexadecimal" toml:"hexadecimal" xml:"hexadecimal" form:"hexadecimal" pickle:"hexadecimal"`
	LeadingDecimalPoint float64  `json:"leadingDecimalPoint" yaml:"leadingDecimalPoint" toml:"leadingDecimalPoint" xml:"leadingDecimalPoint" form:"leadingDecimalPoint" pickle:"leadingDecimalPoint"`
	AndTrailing         float64  `json:"andTrailing" yaml:"andTrailing" toml:"andTrailing" xml:"andTrailing" form:"andTrailing" pickle:"andTrailing"`
	PositiveSign        int32    `json:"positiveSign" yaml:"positiveSign" toml:"positiveSign" xml:"positiveSign" form:"positiveSign" pickle:"positiveSign"`
	TrailingComma       string   `json:"trailingComma" yaml:"trailingComma" toml:"trailingComma" xml:"trailingComma" form:"trailingComma" pickle:"trailingComma"`
	AndIn               []string `json:"andIn" yaml:"andIn" toml:"andIn" xml:"andIn" form:"andIn" pickle:"andIn"`
	BackwardsCompatible string   `json:"backwardsCompatible" yaml:"backwardsCompatible" toml:"backwardsCompatible" xml:"backwardsCompatible" form:"backwardsCompatible" pickle:"backwardsCompatible"`
}

// NewExample returns the sample document.
func NewExample() Example {
	return Example{
		Unquoted:            "and you can quote me on that",
		SingleQuotes:        `I can use "double quotes" here`,
		LineBreaks:          `Look, Mom! No \n's!`,
		Hexadecimal:         0xdecaf,
		LeadingDecimalPoint: .8675309,
		AndTrailing:         8675309.,
		PositiveSign:        +1,
		TrailingComma:       "in objects",
		AndIn:               []string{"arrays", "arrays-2"},
		BackwardsCompatible: "with JSON",
	}
}

// Equal reports whether two documents hold the same values.
func (e Example) Equal(other Example) bool {
	if len(e.AndIn) != len(other.AndIn) {
		return false
	}
	for i := range e.AndIn {
		if e.AndIn[i] != other.AndIn[i] {
			return false
		}
	}
	return e.Unquoted == other.Unquoted &&
		e.SingleQuotes == other.SingleQuotes &&
		e.LineBreaks == other.LineBreaks &&
		e.Hexadecimal == other.Hexadecimal &&
		e.LeadingDecimalPoint == other.LeadingDecimalPoint &&
		e.AndTrailing == other.AndTrailing &&
		e.PositiveSign == other.PositiveSign &&
		e.TrailingComma == other.TrailingComma &&
		e.BackwardsCompatible == other.BackwardsCompatible
}

// JSON5Document exercises comments, unquoted keys, single quotes, line
// continuations, hexadecimal, bare decimal points, plus signs and trailing commas.
const JSON5Document = `
{
  // comments
  unquoted: 'and you can quote me on that',
  singleQuotes: 'I can use "double quotes" here',
  lineBreaks: "Look, Mom! \
No \\n's!",
  hexadecimal: 0xdecaf,
  leadingDecimalPoint: .8675309, andTrailing: 8675309.,
  positiveSign: +1,
  trailingComma: 'in objects', andIn: ['arrays','arrays-2',],
  "backwardsCompatible": "with JSON",
}`

// JSON is the compact JSON rendering in declaration order.
const JSON = `{"unquoted":"and you can quote me on that","singleQuotes":"I can use \"double quotes\" here","lineBreaks":"Look, Mom! No \\n's!","hexadecimal":912559,"leadingDecimalPoint":0.8675309,"andTrailing":8675309,"positiveSign":1,"trailingComma":"in objects","andIn":["arrays","arrays-2"],"backwardsCompatible":"with JSON"}`

// XML is the XML rendering with a declaration and a MyStruct root.
const XML = `<?xml version="1.0" encoding="UTF-8"?><MyStruct><unquoted>and you can quote me on that</unquoted><singleQuotes>I can use "double quotes" here</singleQuotes><lineBreaks>Look, Mom! No \n's!</lineBreaks><hexadecimal>912559</hexadecimal><leadingDecimalPoint>0.8675309</leadingDecimalPoint><andTrailing>8675309</andTrailing><positiveSign>1</positiveSign><trailingComma>in objects</trailingComma><andIn>arrays</andIn><andIn>arrays-2</andIn><backwardsCompatible>with JSON</backwardsCompatible></MyStruct>`

// XMLIndented is the XML rendering spread over lines.
const XMLIndented = `<?xml version="1.0" encoding="UTF-8"?>
<MyStruct>
    <unquoted>and you can quote me on that</unquoted>
    <singleQuotes>I can use "double quotes" here</singleQuotes>
    <lineBreaks>Look, Mom! No \n's!</lineBreaks>
    <hexadecimal>912559</hexadecimal>
    <leadingDecimalPoint>0.8675309</leadingDecimalPoint>
    <andTrailing>8675309</andTrailing>
    <positiveSign>1</positiveSign>
    <trailingComma>in objects</trailingComma>
    <andIn>arrays</andIn>
    <andIn>arrays-2</andIn>
    <backwardsCompatible>with JSON</backwardsCompatible>
</MyStruct>`

// URL is the form-url rendering with indexed list keys.
const URL = `unquoted=and+you+can+quote+me+on+that&singleQuotes=I+can+use+%22double+quotes%22+here&lineBreaks=Look%2C+Mom%21+No+%5Cn%27s%21&hexadecimal=912559&leadingDecimalPoint=0.8675309&andTrailing=8675309&positiveSign=1&trailingComma=in+objects&andIn[0]=arrays&andIn[1]=arrays-2&backwardsCompatible=with+JSON`

// RON is the compact RON rendering.
const RON = `(unquoted:"and you can quote me on that",singleQuotes:"I can use \"double quotes\" here",lineBreaks:"Look, Mom! No \\n\'s!",hexadecimal:912559,leadingDecimalPoint:0.8675309,andTrailing:8675309.0,positiveSign:1,trailingComma:"in objects",andIn:["arrays","arrays-2"],backwardsCompatible:"with JSON")`

// RONPretty is a hand-written RON document with whitespace and an integral float.
const RONPretty = `(
    unquoted: "and you can quote me on that",
    singleQuotes: "I can use \"double quotes\" here",
    lineBreaks: "Look, Mom! No \\n\'s!",
    hexadecimal: 912559,
    leadingDecimalPoint: 0.8675309,
    andTrailing: 8675309,
    positiveSign: 1,
    trailingComma: "in objects",
    andIn: ["arrays","arrays-2"],
    backwardsCompatible: "with JSON"
)
`

// Lexpr is the S-expression rendering.
const Lexpr = `((unquoted . "and you can quote me on that") (singleQuotes . "I can use \"double quotes\" here") (lineBreaks . "Look, Mom! No \\n's!") (hexadecimal . 912559) (leadingDecimalPoint . 0.8675309) (andTrailing . 8675309.0) (positiveSign . 1) (trailingComma . "in objects") (andIn "arrays" "arrays-2") (backwardsCompatible . "with JSON"))`

// LexprMultiline is the S-expression rendering spread over lines.
const LexprMultiline = `(
(unquoted . "and you can quote me on that")
(singleQuotes . "I can use \"double quotes\" here")
(lineBreaks . "Look, Mom! No \\n's!")
(hexadecimal . 912559)
(leadingDecimalPoint . 0.8675309)
(andTrailing . 8675309.0)
(positiveSign . 1)
(trailingComma . "in objects")
(andIn "arrays" "arrays-2")
(backwardsCompatible . "with JSON"))
`

// TOML is the TOML rendering in declaration order.
const TOML = `unquoted = "and you can quote me on that"
singleQuotes = "I can use \"double quotes\" here"
lineBreaks = "Look, Mom! No \\n's!"
hexadecimal = 912559
leadingDecimalPoint = 0.8675309
andTrailing = 8675309.0
positiveSign = 1
trailingComma = "in objects"
andIn = ["arrays", "arrays-2"]
backwardsCompatible = "with JSON"
`

// BSON is the BSON document.
var BSON = []byte{
	69, 1, 0, 0, 2, 117, 110, 113, 117, 111, 116, 101, 100, 0, 29, 0,
	0, 0, 97, 110, 100, 32, 121, 111, 117, 32, 99, 97, 110, 32, 113, 117,
	111, 116, 101, 32, 109, 101, 32, 111, 110, 32, 116, 104, 97, 116, 0, 2,
	115, 105, 110, 103, 108, 101, 81, 117, 111, 116, 101, 115, 0, 31, 0, 0,
	0, 73, 32, 99, 97, 110, 32, 117, 115, 101, 32, 34, 100, 111, 117, 98,
	108, 101, 32, 113, 117, 111, 116, 101, 115, 34, 32, 104, 101, 114, 101, 0,
	2, 108, 105, 110, 101, 66, 114, 101, 97, 107, 115, 0, 20, 0, 0, 0,
	76, 111, 111, 107, 44, 32, 77, 111, 109, 33, 32, 78, 111, 32, 92, 110,
	39, 115, 33, 0, 16, 104, 101, 120, 97, 100, 101, 99, 105, 109, 97, 108,
	0, 175, 236, 13, 0, 1, 108, 101, 97, 100, 105, 110, 103, 68, 101, 99,
	105, 109, 97, 108, 80, 111, 105, 110, 116, 0, 78, 159, 120, 41, 208, 194,
	235, 63, 1, 97, 110, 100, 84, 114, 97, 105, 108, 105, 110, 103, 0, 0,
	0, 0, 160, 253, 139, 96, 65, 16, 112, 111, 115, 105, 116, 105, 118, 101,
	83, 105, 103, 110, 0, 1, 0, 0, 0, 2, 116, 114, 97, 105, 108, 105,
	110, 103, 67, 111, 109, 109, 97, 0, 11, 0, 0, 0, 105, 110, 32, 111,
	98, 106, 101, 99, 116, 115, 0, 4, 97, 110, 100, 73, 110, 0, 35, 0,
	0, 0, 2, 48, 0, 7, 0, 0, 0, 97, 114, 114, 97, 121, 115, 0,
	2, 49, 0, 9, 0, 0, 0, 97, 114, 114, 97, 121, 115, 45, 50, 0,
	0, 2, 98, 97, 99, 107, 119, 97, 114, 100, 115, 67, 111, 109, 112, 97,
	116, 105, 98, 108, 101, 0, 10, 0, 0, 0, 119, 105, 116, 104, 32, 74,
	83, 79, 78, 0, 0,
}

// CBOR is the CBOR map, with floats in their shortest form.
var CBOR = []byte{
	170, 104, 117, 110, 113, 117, 111, 116, 101, 100, 120, 28, 97, 110, 100, 32,
	121, 111, 117, 32, 99, 97, 110, 32, 113, 117, 111, 116, 101, 32, 109, 101,
	32, 111, 110, 32, 116, 104, 97, 116, 108, 115, 105, 110, 103, 108, 101, 81,
	117, 111, 116, 101, 115, 120, 30, 73, 32, 99, 97, 110, 32, 117, 115, 101,
	32, 34, 100, 111, 117, 98, 108, 101, 32, 113, 117, 111, 116, 101, 115, 34,
	32, 104, 101, 114, 101, 106, 108, 105, 110, 101, 66, 114, 101, 97, 107, 115,
	115, 76, 111, 111, 107, 44, 32, 77, 111, 109, 33, 32, 78, 111, 32, 92,
	110, 39, 115, 33, 107, 104, 101, 120, 97, 100, 101, 99, 105, 109, 97, 108,
	26, 0, 13, 236, 175, 115, 108, 101, 97, 100, 105, 110, 103, 68, 101, 99,
	105, 109, 97, 108, 80, 111, 105, 110, 116, 251, 63, 235, 194, 208, 41, 120,
	159, 78, 107, 97, 110, 100, 84, 114, 97, 105, 108, 105, 110, 103, 250, 75,
	4, 95, 237, 108, 112, 111, 115, 105, 116, 105, 118, 101, 83, 105, 103, 110,
	1, 109, 116, 114, 97, 105, 108, 105, 110, 103, 67, 111, 109, 109, 97, 106,
	105, 110, 32, 111, 98, 106, 101, 99, 116, 115, 101, 97, 110, 100, 73, 110,
	130, 102, 97, 114, 114, 97, 121, 115, 104, 97, 114, 114, 97, 121, 115, 45,
	50, 115, 98, 97, 99, 107, 119, 97, 114, 100, 115, 67, 111, 109, 112, 97,
	116, 105, 98, 108, 101, 105, 119, 105, 116, 104, 32, 74, 83, 79, 78,
}

// MessagePack is the MessagePack rendering with the struct as an array.
var MessagePack = []byte{
	154, 188, 97, 110, 100, 32, 121, 111, 117, 32, 99, 97, 110, 32, 113, 117,
	111, 116, 101, 32, 109, 101, 32, 111, 110, 32, 116, 104, 97, 116, 190, 73,
	32, 99, 97, 110, 32, 117, 115, 101, 32, 34, 100, 111, 117, 98, 108, 101,
	32, 113, 117, 111, 116, 101, 115, 34, 32, 104, 101, 114, 101, 179, 76, 111,
	111, 107, 44, 32, 77, 111, 109, 33, 32, 78, 111, 32, 92, 110, 39, 115,
	33, 206, 0, 13, 236, 175, 203, 63, 235, 194, 208, 41, 120, 159, 78, 203,
	65, 96, 139, 253, 160, 0, 0, 0, 1, 170, 105, 110, 32, 111, 98, 106,
	101, 99, 116, 115, 146, 166, 97, 114, 114, 97, 121, 115, 168, 97, 114, 114,
	97, 121, 115, 45, 50, 169, 119, 105, 116, 104, 32, 74, 83, 79, 78,
}

// Pickle is the protocol 3 pickle of the document as a dict.
var Pickle = []byte{
	128, 3, 125, 40, 88, 8, 0, 0, 0, 117, 110, 113, 117, 111, 116, 101,
	100, 88, 28, 0, 0, 0, 97, 110, 100, 32, 121, 111, 117, 32, 99, 97,
	110, 32, 113, 117, 111, 116, 101, 32, 109, 101, 32, 111, 110, 32, 116, 104,
	97, 116, 88, 12, 0, 0, 0, 115, 105, 110, 103, 108, 101, 81, 117, 111,
	116, 101, 115, 88, 30, 0, 0, 0, 73, 32, 99, 97, 110, 32, 117, 115,
	101, 32, 34, 100, 111, 117, 98, 108, 101, 32, 113, 117, 111, 116, 101, 115,
	34, 32, 104, 101, 114, 101, 88, 10, 0, 0, 0, 108, 105, 110, 101, 66,
	114, 101, 97, 107, 115, 88, 19, 0, 0, 0, 76, 111, 111, 107, 44, 32,
	77, 111, 109, 33, 32, 78, 111, 32, 92, 110, 39, 115, 33, 88, 11, 0,
	0, 0, 104, 101, 120, 97, 100, 101, 99, 105, 109, 97, 108, 74, 175, 236,
	13, 0, 88, 19, 0, 0, 0, 108, 101, 97, 100, 105, 110, 103, 68, 101,
	99, 105, 109, 97, 108, 80, 111, 105, 110, 116, 71, 63, 235, 194, 208, 41,
	120, 159, 78, 88, 11, 0, 0, 0, 97, 110, 100, 84, 114, 97, 105, 108,
	105, 110, 103, 71, 65, 96, 139, 253, 160, 0, 0, 0, 88, 12, 0, 0,
	0, 112, 111, 115, 105, 116, 105, 118, 101, 83, 105, 103, 110, 74, 1, 0,
	0, 0, 88, 13, 0, 0, 0, 116, 114, 97, 105, 108, 105, 110, 103, 67,
	111, 109, 109, 97, 88, 10, 0, 0, 0, 105, 110, 32, 111, 98, 106, 101,
	99, 116, 115, 88, 5, 0, 0, 0, 97, 110, 100, 73, 110, 93, 40, 88,
	6, 0, 0, 0, 97, 114, 114, 97, 121, 115, 88, 8, 0, 0, 0, 97,
	114, 114, 97, 121, 115, 45, 50, 101, 88, 19, 0, 0, 0, 98, 97, 99,
	107, 119, 97, 114, 100, 115, 67, 111, 109, 112, 97, 116, 105, 98, 108, 101,
	88, 9, 0, 0, 0, 119, 105, 116, 104, 32, 74, 83, 79, 78, 117, 46,
}

// Postcard is the Postcard rendering.
var Postcard = []byte{
	28, 97, 110, 100, 32, 121, 111, 117, 32, 99, 97, 110, 32, 113, 117, 111,
	116, 101, 32, 109, 101, 32, 111, 110, 32, 116, 104, 97, 116, 30, 73, 32,
	99, 97, 110, 32, 117, 115, 101, 32, 34, 100, 111, 117, 98, 108, 101, 32,
	113, 117, 111, 116, 101, 115, 34, 32, 104, 101, 114, 101, 19, 76, 111, 111,
	107, 44, 32, 77, 111, 109, 33, 32, 78, 111, 32, 92, 110, 39, 115, 33,
	222, 178, 111, 78, 159, 120, 41, 208, 194, 235, 63, 0, 0, 0, 160, 253,
	139, 96, 65, 2, 10, 105, 110, 32, 111, 98, 106, 101, 99, 116, 115, 2,
	6, 97, 114, 114, 97, 121, 115, 8, 97, 114, 114, 97, 121, 115, 45, 50,
	9, 119, 105, 116, 104, 32, 74, 83, 79, 78,
}

// FlexBuffers is the FlexBuffers map, written with mixed widths.
var FlexBuffers = []byte{
	117, 110, 113, 117, 111, 116, 101, 100, 0, 28, 97, 110, 100, 32, 121, 111,
	117, 32, 99, 97, 110, 32, 113, 117, 111, 116, 101, 32, 109, 101, 32, 111,
	110, 32, 116, 104, 97, 116, 0, 115, 105, 110, 103, 108, 101, 81, 117, 111,
	116, 101, 115, 0, 30, 73, 32, 99, 97, 110, 32, 117, 115, 101, 32, 34,
	100, 111, 117, 98, 108, 101, 32, 113, 117, 111, 116, 101, 115, 34, 32, 104,
	101, 114, 101, 0, 108, 105, 110, 101, 66, 114, 101, 97, 107, 115, 0, 19,
	76, 111, 111, 107, 44, 32, 77, 111, 109, 33, 32, 78, 111, 32, 92, 110,
	39, 115, 33, 0, 104, 101, 120, 97, 100, 101, 99, 105, 109, 97, 108, 0,
	108, 101, 97, 100, 105, 110, 103, 68, 101, 99, 105, 109, 97, 108, 80, 111,
	105, 110, 116, 0, 97, 110, 100, 84, 114, 97, 105, 108, 105, 110, 103, 0,
	112, 111, 115, 105, 116, 105, 118, 101, 83, 105, 103, 110, 0, 116, 114, 97,
	105, 108, 105, 110, 103, 67, 111, 109, 109, 97, 0, 10, 105, 110, 32, 111,
	98, 106, 101, 99, 116, 115, 0, 97, 110, 100, 73, 110, 0, 6, 97, 114,
	114, 97, 121, 115, 0, 8, 97, 114, 114, 97, 121, 115, 45, 50, 0, 2,
	18, 11, 20, 20, 98, 97, 99, 107, 119, 97, 114, 100, 115, 67, 111, 109,
	112, 97, 116, 105, 98, 108, 101, 0, 9, 119, 105, 116, 104, 32, 74, 83,
	79, 78, 0, 0, 10, 0, 63, 0, 116, 0, 38, 0, 152, 0, 142, 0,
	188, 0, 114, 0, 237, 0, 105, 0, 24, 1, 0, 0, 0, 0, 0, 0,
	26, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0,
	10, 0, 0, 0, 0, 0, 0, 0, 88, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 160, 253, 139, 96, 65, 79, 0, 0, 0, 0, 0, 0, 0,
	175, 236, 13, 0, 0, 0, 0, 0, 78, 159, 120, 41, 208, 194, 235, 63,
	0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0,
	59, 1, 0, 0, 0, 0, 0, 0, 188, 0, 0, 0, 0, 0, 0, 0,
	118, 1, 0, 0, 0, 0, 0, 0, 40, 15, 20, 7, 15, 20, 7, 20,
	20, 20, 90, 39, 1,
}
