package base57

const (
	// GroupsPerLine is the number of groups written between two line breaks.
	GroupsPerLine = 8
	// LineLength is the number of symbols in a full line, not counting the line break.
	LineLength = GroupsPerLine * GroupSize

	lineBreak = '\n'
)

// tailDigits maps a tail length in bytes to the number of digits encoding it.
var tailDigits = [BlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// tailBytes is the inverse of tailDigits; -1 marks digit counts no byte length encodes to.
var tailBytes = [GroupSize + 1]int{0, -1, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8}

// EncodedLen returns the exact length of the encoding of n bytes, line breaks included.
func EncodedLen(n int) int {
	symbols := GroupSize*(n/BlockSize) + tailDigits[n%BlockSize]
	if symbols == 0 {
		return 0
	}
	return symbols + (symbols-1)/LineLength
}

// Encode writes the encoding of src to dst and returns the number of bytes written, which is always
// EncodedLen(len(src)). dst must be at least that long.
//
// A line break follows every GroupsPerLine groups unless nothing follows them, so encoding a stream in
// chunks which are multiples of GroupsPerLine*BlockSize bytes and joining the chunks with line breaks
// gives the same text as encoding it at once.
func Encode(dst, src []byte) int {
	o := 0
	groups := 0
	for len(src) >= BlockSize {
		encodeDigits(dst[o:o+GroupSize], le64(src[:BlockSize]))
		src = src[BlockSize:]
		o += GroupSize
		if groups++; groups == GroupsPerLine && len(src) > 0 {
			dst[o] = lineBreak
			o++
			groups = 0
		}
	}
	if len(src) > 0 {
		var group [GroupSize]byte
		encodeDigits(group[:], le64(src))
		o += copy(dst[o:], group[:tailDigits[len(src)]])
	}
	return o
}

// AppendEncode appends the encoding of src to dst.
func AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = grow(dst, n)
	Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// EncodeToString returns the encoding of src.
func EncodeToString(src []byte) string {
	buf := make([]byte, EncodedLen(len(src)))
	Encode(buf, src)
	return string(buf)
}

// le64 reads up to BlockSize bytes as a little-endian integer.
func le64(b []byte) uint64 {
	var n uint64
	for i := len(b) - 1; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	return n
}

// putLE64 writes the len(b) low-order bytes of n to b, little-endian.
func putLE64(b []byte, n uint64) {
	for i := range b {
		b[i] = byte(n)
		n >>= 8
	}
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	g := make([]byte, len(b), len(b)+n)
	copy(g, b)
	return g
}
