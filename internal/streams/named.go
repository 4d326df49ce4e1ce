package streams

import (
	"fmt"
	"io"
)

// NamedReader is a SafeReader which prints as the name of its source, e.g. a file name or "stdin".
// When the wrapped reader is named as well, both names are printed as "outer->inner".
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (nr *NamedReader) String() string {
	var s io.ReadCloser = nr.ReadCloserClosed
	for {
		t, ok := s.(UnwrappedReadCloser)
		if !ok {
			return nr.name
		}
		s = t.Unwrap()
		if v, ok := s.(fmt.Stringer); ok {
			return nr.name + "->" + v.String()
		}
	}
}

func (nr *NamedReader) Unwrap() io.ReadCloser {
	return nr.ReadCloserClosed
}

// NamedWriter is a SafeWriter which prints as the name of its destination.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (nw *NamedWriter) String() string {
	var s io.WriteCloser = nw.WriteCloserClosed
	for {
		t, ok := s.(UnwrappedWriteCloser)
		if !ok {
			return nw.name
		}
		s = t.Unwrap()
		if v, ok := s.(fmt.Stringer); ok {
			return nw.name + "->" + v.String()
		}
	}
}

func (nw *NamedWriter) Unwrap() io.WriteCloser {
	return nw.WriteCloserClosed
}
