package streams

import (
	"io"
)

// SafeWriter wraps an io.WriteCloser so that `Close()` can be called any number of times. Only the first
// call reaches the wrapped writer; the others succeed without doing anything.
type SafeWriter struct {
	io.WriteCloser
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if sw, ok := wrapped.(*SafeWriter); ok {
		return sw
	}
	return &SafeWriter{
		WriteCloser: wrapped,
	}
}

func (sw *SafeWriter) ReadFrom(r io.Reader) (n int64, err error) {
	if o, ok := sw.WriteCloser.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(sw.WriteCloser, r, make([]byte, BufferSize))
}

func (sw *SafeWriter) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true
	return LogClose(sw.WriteCloser)
}

// Closed returns `true` once Close has been called
func (sw *SafeWriter) Closed() bool {
	return sw.closed
}

func (sw *SafeWriter) Unwrap() io.WriteCloser {
	return sw.WriteCloser
}
