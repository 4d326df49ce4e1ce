package base57_test

import (
	"fmt"
	"github.com/bokysan/base57"
	"io"
	"os"
	"strings"
)

func ExampleEncodeToString() {
	fmt.Println(base57.EncodeToString([]byte("Hello, World!")))
	// Output: fyfHqJYxruPa7NQLbg
}

func ExampleDecode() {
	src := []byte("fyfHqJYx-ruPa7NQLbg\x00garbage")
	dst := make([]byte, base57.DecodedMaxLen(len(src)))

	r := base57.Decode(dst, src)
	fmt.Printf("%q %v, %d bytes consumed\n", dst[:r.Written], r.Reason, r.Consumed)
	// Output: "Hello, World!" control symbol, 19 bytes consumed
}

func ExampleDecodingBuffer() {
	var buf base57.DecodingBuffer
	dst := make([]byte, 16)
	written := 0

	for _, part := range []string{"fyfHq", "JYxruPa", "7NQLbg"} {
		r := buf.DecodePart(dst[written:], []byte(part))
		written += r.Written
	}
	r := buf.Flush(dst[written:])
	written += r.Written

	fmt.Println(string(dst[:written]))
	// Output: Hello, World!
}

func ExampleEncodeUint64() {
	fmt.Println(base57.EncodeUint64(0))
	fmt.Println(base57.EncodeUint64(1<<64 - 1))
	// Output:
	// ZYY22344556
	// Vf47mkGtya9
}

func ExampleNewEncoder() {
	enc := base57.NewEncoder(os.Stdout)
	_, _ = io.Copy(enc, strings.NewReader("Hello, World!"))
	_ = enc.Close()
	// Output: fyfHqJYxruPa7NQLbg
}
