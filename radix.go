package base57

import (
	"math"
)

const (
	// GroupSize is the number of symbols which encode one full block.
	GroupSize = 11
	// BlockSize is the number of bytes in one full block.
	BlockSize = 8
)

// position is one digit place of a group: its base and its weight (the product of all lower bases).
type position struct {
	base      uint64
	magnitude uint64
}

// positions drive both conversion directions. Right before every base-56 position the symbol shift
// grows by the previous digit plus one, so such a position never repeats the symbol in front of it.
var positions = [GroupSize]position{
	{base: 57, magnitude: 1},
	{base: 56, magnitude: 57},
	{base: 57, magnitude: 3192},
	{base: 56, magnitude: 181944},
	{base: 57, magnitude: 10188864},
	{base: 56, magnitude: 580765248},
	{base: 56, magnitude: 32522853888},
	{base: 57, magnitude: 1821279817728},
	{base: 56, magnitude: 103812949610496},
	{base: 57, magnitude: 5813525178187776},
	{base: 56, magnitude: 331370935156703232},
}

// maxTopDigit is the only value of the most significant digit for which the sum may or may not fit.
const maxTopDigit = math.MaxUint64 / 331370935156703232

func (p position) shifted() bool {
	return p.base < uint64(Base)
}

// encodeDigits writes the GroupSize symbols of n into dst, least significant digit first.
func encodeDigits(dst []byte, n uint64) {
	_ = dst[GroupSize-1]

	shift, prev := 0, 0
	for i, p := range positions {
		if p.shifted() {
			shift = (shift + prev + 1) % Base
		}
		d := int(n % p.base)
		n /= p.base
		dst[i] = Alphabet[(shift+d)%Base]
		prev = d
	}
}

// accumulate returns the integer encoded by the symbol values (as returned by Classify). values may be
// shorter than a group, in which case the missing high digits count as zero. ok is false if a digit
// does not exist at its position or if a full group does not fit into 64 bits.
func accumulate(values []uint8) (value uint64, ok bool) {
	shift, prev := 0, 0
	for i, v := range values {
		p := positions[i]
		if p.shifted() {
			shift = (shift + prev + 1) % Base
		}
		d := (int(v) + Base - shift) % Base
		if uint64(d) >= p.base {
			return 0, false
		}
		term := uint64(d) * p.magnitude
		if i == GroupSize-1 && d >= maxTopDigit && value > math.MaxUint64-term {
			return 0, false
		}
		value += term
		prev = d
	}
	return value, true
}

// AppendUint64 appends the GroupSize symbols encoding n to dst.
func AppendUint64(dst []byte, n uint64) []byte {
	var group [GroupSize]byte
	encodeDigits(group[:], n)
	return append(dst, group[:]...)
}

// EncodeUint64 returns the GroupSize symbols encoding n.
func EncodeUint64(n uint64) string {
	return string(AppendUint64(make([]byte, 0, GroupSize), n))
}

// DecodeUint64 is the reverse of EncodeUint64. s must hold exactly GroupSize symbols; delimiters are
// not skipped.
func DecodeUint64(s string) (uint64, error) {
	var values [GroupSize]uint8

	for i := 0; i < len(s); i++ {
		if i == GroupSize {
			return 0, newCorruptInputError(InvalidSymbol, i, s[i])
		}
		class, v := Classify(s[i])
		if class != Digit {
			return 0, newCorruptInputError(symbolReason(class), i, s[i])
		}
		values[i] = v
	}
	if len(s) < GroupSize {
		return 0, newCorruptInputError(Truncated, len(s), 0)
	}

	value, ok := accumulate(values[:])
	if !ok {
		return 0, newCorruptInputError(Overflow, GroupSize, 0)
	}
	return value, nil
}
