package base57

import (
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"github.com/mtraver/base91"
	"github.com/stretchr/testify/require"
	"go.chromium.org/luci/common/data/base128"
	"testing"
)

var benchmarkData = randomBytes(0xBE7C4, 64*1024)

func BenchmarkEncode(b *testing.B) {
	dst := make([]byte, EncodedLen(len(benchmarkData)))
	b.SetBytes(int64(len(benchmarkData)))
	for i := 0; i < b.N; i++ {
		Encode(dst, benchmarkData)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := []byte(EncodeToString(benchmarkData))
	dst := make([]byte, DecodedMaxLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := Decode(dst, src); r.Reason != NoInput {
			b.Fatal(r.Err())
		}
	}
}

func BenchmarkEncode_Base64(b *testing.B) {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(benchmarkData)))
	b.SetBytes(int64(len(benchmarkData)))
	for i := 0; i < b.N; i++ {
		base64.StdEncoding.Encode(dst, benchmarkData)
	}
}

func BenchmarkEncode_Ascii85(b *testing.B) {
	dst := make([]byte, ascii85.MaxEncodedLen(len(benchmarkData)))
	b.SetBytes(int64(len(benchmarkData)))
	for i := 0; i < b.N; i++ {
		ascii85.Encode(dst, benchmarkData)
	}
}

func BenchmarkEncode_Base91(b *testing.B) {
	dst := make([]byte, base91.StdEncoding.EncodedLen(len(benchmarkData)))
	b.SetBytes(int64(len(benchmarkData)))
	for i := 0; i < b.N; i++ {
		base91.StdEncoding.Encode(dst, benchmarkData)
	}
}

func BenchmarkEncode_Base128(b *testing.B) {
	b.SetBytes(int64(len(benchmarkData)))
	for i := 0; i < b.N; i++ {
		_ = base128.EncodeToString(benchmarkData)
	}
}

// Test_Density places base57 between base32 and base91 in output size.
func Test_Density(t *testing.T) {
	n := len(benchmarkData)
	encoded := EncodedLen(n)
	if b32 := base32.StdEncoding.EncodedLen(n); encoded >= b32 {
		t.Errorf("expected base57 (%d) to be shorter than base32 (%d)", encoded, b32)
	}
	if b91 := base91.StdEncoding.EncodedLen(n); encoded <= b91 {
		t.Errorf("expected base57 (%d) to be longer than base91 (%d)", encoded, b91)
	}
}

// Test_Density_Base128 compares with an encoding which is not restricted to printable ASCII.
func Test_Density_Base128(t *testing.T) {
	n := len(benchmarkData)
	require.Greater(t, EncodedLen(n), base128.EncodedLen(n))
	require.Less(t, EncodedLen(n), 2*base128.EncodedLen(n))
}
