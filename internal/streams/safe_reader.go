package streams

import (
	"io"
)

// SafeReader wraps an io.ReadCloser so that `Close()` can be called any number of times. Only the first
// call reaches the wrapped reader; the others succeed without doing anything.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if sr, ok := wrapped.(*SafeReader); ok {
		return sr
	}
	return &SafeReader{
		ReadCloser: wrapped,
	}
}

func (sr *SafeReader) WriteTo(w io.Writer) (n int64, err error) {
	if o, ok := sr.ReadCloser.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, sr.ReadCloser, make([]byte, BufferSize))
}

func (sr *SafeReader) Close() error {
	if sr.closed {
		return nil
	}
	sr.closed = true
	return LogClose(sr.ReadCloser)
}

// Closed returns `true` once Close has been called
func (sr *SafeReader) Closed() bool {
	return sr.closed
}

func (sr *SafeReader) Unwrap() io.ReadCloser {
	return sr.ReadCloser
}
