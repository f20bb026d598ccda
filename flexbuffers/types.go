package flexbuffers

// Value types as stored in the upper six bits of a packed type byte.
const (
	typeNull          byte = 0
	typeInt           byte = 1
	typeUint          byte = 2
	typeFloat         byte = 3
	typeKey           byte = 4
	typeString        byte = 5
	typeIndirectInt   byte = 6
	typeIndirectUint  byte = 7
	typeIndirectFloat byte = 8
	typeMap           byte = 9
	typeVector        byte = 10
	typeVectorInt     byte = 11
	typeVectorUint    byte = 12
	typeVectorFloat   byte = 13
	typeVectorKey     byte = 14
	typeVectorString  byte = 15
	typeVectorInt2    byte = 16
	typeVectorFloat4  byte = 24
	typeBlob          byte = 25
	typeBool          byte = 26
	typeVectorBool    byte = 36
)

// width64 is the bit width code for 8-byte slots.
const width64 byte = 3

func packType(typ, widthCode byte) byte {
	return typ<<2 | widthCode
}

// isInline reports whether a value of typ is stored directly in its slot.
func isInline(typ byte) bool {
	return typ <= typeFloat || typ == typeBool
}

// typedElement returns the element type of a typed vector and, for the
// fixed-length variants, its length.
func typedElement(typ byte) (elem byte, fixed int, ok bool) {
	switch {
	case typ >= typeVectorInt && typ <= typeVectorString:
		return typ - typeVectorInt + typeInt, 0, true
	case typ >= typeVectorInt2 && typ <= typeVectorFloat4:
		n := typ - typeVectorInt2
		return n%3 + typeInt, int(n/3) + 2, true
	case typ == typeVectorBool:
		return typeBool, 0, true
	}
	return 0, 0, false
}
