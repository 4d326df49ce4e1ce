package base57

// Alphabet lists the symbols in digit order: the symbol at index i stands for the value i. The glyphs
// 0, O, 1, l and I are left out, and so are '+', '-', '/' and '='.
const Alphabet = "ZY23456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWX"

// Base is the number of symbols in the Alphabet.
const Base = len(Alphabet)

// Class tells how the decoder treats a byte.
type Class uint8

const (
	// Digit is a member of the Alphabet.
	Digit Class = iota
	// Delimiter is whitespace or a separator. Delimiters are skipped but counted as consumed.
	Delimiter
	// Control is an ASCII control byte other than a delimiter or backspace. It terminates decoding.
	Control
	// Invalid is anything else, DEL and backspace included.
	Invalid
)

func (c Class) String() string {
	switch c {
	case Digit:
		return "digit"
	case Delimiter:
		return "delimiter"
	case Control:
		return "control"
	default:
		return "invalid"
	}
}

const (
	symbolDelimiter uint8 = 0xFD
	symbolControl   uint8 = 0xFE
	symbolInvalid   uint8 = 0xFF

	delimiters = "\t\n\v\f\r -./:\\_"
)

// symbolValues maps every byte to its digit value or to one of the symbol* markers.
var symbolValues = buildSymbolValues()

func buildSymbolValues() (table [256]uint8) {
	for i := range table {
		switch {
		case i <= 0x1F && i != '\b':
			table[i] = symbolControl
		default:
			table[i] = symbolInvalid
		}
	}
	for i := 0; i < len(delimiters); i++ {
		table[delimiters[i]] = symbolDelimiter
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = uint8(i)
	}
	return
}

// Classify returns the class of the byte b and, for digits, its value.
func Classify(b byte) (Class, uint8) {
	v := symbolValues[b]
	switch v {
	case symbolDelimiter:
		return Delimiter, 0
	case symbolControl:
		return Control, 0
	case symbolInvalid:
		return Invalid, 0
	default:
		return Digit, v
	}
}
