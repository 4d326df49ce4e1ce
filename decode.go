package base57

// Result reports how far a decoding call got. The counts are valid whatever the Reason.
type Result struct {
	// Written is the number of bytes written to the output.
	Written int
	// Consumed is the number of input bytes processed. When decoding stopped on a symbol, that symbol
	// is the next unconsumed byte.
	Consumed int
	// Reason tells why decoding stopped.
	Reason Reason
	// Symbol is the byte decoding stopped on, for ControlSymbol and InvalidSymbol.
	Symbol byte
}

// Err returns nil when all input was decoded and a *CorruptInputError otherwise.
func (r Result) Err() error {
	if r.Reason == NoInput {
		return nil
	}
	return newCorruptInputError(r.Reason, r.Consumed, r.Symbol)
}

// DecodedMaxLen returns the maximum number of bytes n encoded bytes decode to.
func DecodedMaxLen(n int) int {
	groups, rest := n/GroupSize, n%GroupSize
	if tailBytes[rest] < 0 {
		rest--
	}
	return groups*BlockSize + tailBytes[rest]
}

// Decode decodes src into dst, which must be at least DecodedMaxLen(len(src)) bytes long.
//
// Delimiters are skipped. A control byte ends the input: the digits in front of it are decoded as
// if the input ended there and the Reason is ControlSymbol, unless those digits are themselves
// truncated or overflow. On an invalid byte decoding stops at once and the digits of the unfinished
// group are dropped.
func Decode(dst, src []byte) Result {
	var buf DecodingBuffer

	r := buf.DecodePart(dst, src)
	if r.Reason != NoInput && r.Reason != ControlSymbol {
		return r
	}

	f := buf.Flush(dst[r.Written:])
	r.Written += f.Written
	if f.Reason != NoInput {
		r.Reason = f.Reason
		r.Symbol = 0
	}
	return r
}

// DecodeString returns the bytes encoded by s. The bytes decoded before an error are returned along
// with it.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedMaxLen(len(s)))
	r := Decode(dst, []byte(s))
	return dst[:r.Written], r.Err()
}
