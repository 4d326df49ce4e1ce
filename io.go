package base57

import (
	"github.com/pkg/errors"
	"io"
)

const (
	// lineBlock is the number of bytes encoded on one line.
	lineBlock = GroupsPerLine * BlockSize
	// readSize is how much encoded input a decoder asks for at a time.
	readSize = 1 << 15
)

// ErrClosed is returned when writing to an Encoder which has been closed.
var ErrClosed = errors.New("base57: write to closed encoder")

// NewEncoder returns a stream encoder. Data written to it is encoded and written to w. The output is
// the same as Encode would produce for all the data at once, so the encoder holds back up to one line
// of input; Close must be called to write it out. Close does not close w.
func NewEncoder(w io.Writer) io.WriteCloser {
	return &encoder{w: w}
}

type encoder struct {
	w    io.Writer
	err  error
	buf  [lineBlock]byte
	nbuf int
	out  [LineLength + 1]byte
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	for len(p) > 0 {
		// A full line gets its line break only once more data follows it.
		if e.nbuf == len(e.buf) {
			if e.err = e.flushLine(); e.err != nil {
				return n, e.err
			}
		}
		m := copy(e.buf[e.nbuf:], p)
		e.nbuf += m
		n += m
		p = p[m:]
	}
	return n, nil
}

func (e *encoder) flushLine() error {
	k := Encode(e.out[:], e.buf[:])
	e.out[k] = lineBreak
	e.nbuf = 0
	_, err := e.w.Write(e.out[:k+1])
	return errors.WithStack(err)
}

func (e *encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	e.err = ErrClosed

	k := Encode(e.out[:], e.buf[:e.nbuf])
	e.nbuf = 0
	if k == 0 {
		return nil
	}
	_, err := e.w.Write(e.out[:k])
	return errors.WithStack(err)
}

// NewDecoder returns a stream decoder reading encoded data from r. Delimiters are skipped; any other
// byte outside the alphabet, control bytes included, fails the stream with a *CorruptInputError
// carrying the absolute input offset. The decoded data preceding the failure is returned first.
func NewDecoder(r io.Reader) io.Reader {
	return &decoder{r: r}
}

type decoder struct {
	r        io.Reader
	err      error
	buf      DecodingBuffer
	consumed int
	in       [readSize]byte
	outbuf   [(readSize+GroupSize)/GroupSize*BlockSize + BlockSize]byte
	out      []byte
}

func (d *decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

func (d *decoder) fill() {
	n, err := d.r.Read(d.in[:])
	written := 0
	if n > 0 {
		r := d.buf.DecodePart(d.outbuf[:], d.in[:n])
		written = r.Written
		if r.Reason != NoInput {
			d.out = d.outbuf[:written]
			d.err = newCorruptInputError(r.Reason, d.consumed+r.Consumed, r.Symbol)
			return
		}
		d.consumed += n
	}

	switch {
	case err == io.EOF:
		f := d.buf.Flush(d.outbuf[written:])
		written += f.Written
		if f.Reason != NoInput {
			d.err = newCorruptInputError(f.Reason, d.consumed, 0)
		} else {
			d.err = io.EOF
		}
	case err != nil:
		d.err = errors.WithStack(err)
	}
	d.out = d.outbuf[:written]
}
