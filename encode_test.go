package base57

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_EncodedLen(t *testing.T) {
	rnd := lcg(0x723D77B137A17BB1)
	lengths := make([]int, 0)
	for n := 0; n <= 200; n++ {
		lengths = append(lengths, n)
	}
	for i := 0; i < 100; i++ {
		lengths = append(lengths, rnd.intn(8*1024))
	}

	for _, n := range lengths {
		encoded := EncodeToString(rnd.bytes(n))
		require.Equal(t, len(encoded), EncodedLen(n), "Wrong length for %d bytes", n)
		if n >= 4 {
			require.LessOrEqual(t, 2*EncodedLen(n), 3*n, "Encoding of %d bytes is too long", n)
		}
	}
}

func Test_Encode_Known(t *testing.T) {
	tests := []struct {
		plain    []byte
		expected string
	}{
		{[]byte{}, ""},
		{[]byte{0}, "ZY"},
		{[]byte{0xFF}, "sx"},
		{[]byte{0, 1, 2, 3, 4, 5, 6, 7}, "a8PVi8heiLN"},
		{[]byte("Hello, World!"), "fyfHqJYxruPa7NQLbg"},
		{repeat(0, 8), "ZYY22344556"},
		{repeat(0xFF, 8), "Vf47mkGtya9"},
		{repeat(0xFF, 65), strings.Repeat("Vf47mkGtya9", 8) + "\nsx"},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, EncodeToString(test.plain))
	}
}

func Test_Encode_LineBreaks(t *testing.T) {
	rnd := lcg(42)
	for _, n := range []int{63, 64, 65, 127, 128, 129, 1000} {
		encoded := EncodeToString(rnd.bytes(n))
		require.False(t, strings.HasSuffix(encoded, "\n"), "Encoding of %d bytes ends with a line break", n)

		lines := strings.Split(encoded, "\n")
		require.Equal(t, (n-1)/lineBlock+1, len(lines), "Wrong number of lines for %d bytes", n)
		for _, line := range lines[:len(lines)-1] {
			require.Equal(t, LineLength, len(line))
		}
	}
}

func Test_Encode_Chunked(t *testing.T) {
	plain := randomBytes(7, 5*lineBlock+13)

	chunks := make([]string, 0)
	for i := 0; i < len(plain); i += 2 * lineBlock {
		chunks = append(chunks, EncodeToString(plain[i:min(i+2*lineBlock, len(plain))]))
	}
	require.Equal(t, EncodeToString(plain), strings.Join(chunks, "\n"))
}

func Test_AppendEncode(t *testing.T) {
	prefix := []byte("prefix:")
	encoded := AppendEncode(prefix, []byte("Hello, World!"))
	require.Equal(t, "prefix:fyfHqJYxruPa7NQLbg", string(encoded))
	require.Equal(t, "prefix:", string(prefix))

	buf := make([]byte, 2, 64)
	encoded = AppendEncode(buf, []byte{0xFF})
	require.Equal(t, []byte{0, 0, 's', 'x'}, encoded)
	require.True(t, bytes.Equal(buf[:4], encoded), "AppendEncode should reuse spare capacity")
}
