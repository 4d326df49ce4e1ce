package base57

// DecodingBuffer holds the digits of an unfinished group between DecodePart calls. The zero value is
// an empty buffer. A buffer serves one stream and must not be shared between goroutines.
type DecodingBuffer struct {
	values  [GroupSize]uint8
	pending int
}

// Pending returns the number of digits waiting for the rest of their group.
func (b *DecodingBuffer) Pending() int {
	return b.pending
}

// Reset empties the buffer so it can start a new stream.
func (b *DecodingBuffer) Reset() {
	*b = DecodingBuffer{}
}

// DecodePart decodes as much of src as possible into dst and keeps the digits of an unfinished group
// for the next call. Input may be split anywhere. dst must have room for
// DecodedMaxLen(b.Pending()+len(src)) bytes.
//
// The Reason is NoInput when all of src was consumed. ControlSymbol and InvalidSymbol leave the
// offending byte unconsumed. On Overflow the 11 symbols of the bad group are consumed and dropped.
// Once the stream has ended, Flush must be called exactly once.
func (b *DecodingBuffer) DecodePart(dst, src []byte) (r Result) {
	for r.Consumed < len(src) {
		symbol := src[r.Consumed]
		v := symbolValues[symbol]
		switch v {
		case symbolDelimiter:
			r.Consumed++
			continue
		case symbolControl:
			r.Reason, r.Symbol = ControlSymbol, symbol
			return
		case symbolInvalid:
			r.Reason, r.Symbol = InvalidSymbol, symbol
			return
		}

		r.Consumed++
		b.values[b.pending] = v
		if b.pending++; b.pending < GroupSize {
			continue
		}

		b.pending = 0
		value, ok := accumulate(b.values[:])
		if !ok {
			r.Reason = Overflow
			return
		}
		putLE64(dst[r.Written:r.Written+BlockSize], value)
		r.Written += BlockSize
	}
	return
}

// Flush decodes the digits left in the buffer as the tail of the stream and empties the buffer. dst
// must have room for BlockSize-1 bytes. Nothing is written if the buffer is empty.
//
// The result is Truncated if no tail length maps to the number of pending digits and Overflow if the
// digits encode a value which does not fit into the tail length.
func (b *DecodingBuffer) Flush(dst []byte) (r Result) {
	k := b.pending
	b.pending = 0
	if k == 0 {
		return
	}

	n := tailBytes[k]
	if n < 0 {
		r.Reason = Truncated
		return
	}

	// The digits above the pending ones are taken as zero, which is what reducing the full group
	// modulo the magnitude of position k amounts to.
	value, ok := accumulate(b.values[:k])
	if !ok || value>>(8*uint(n)) != 0 {
		r.Reason = Overflow
		return
	}
	putLE64(dst[:n], value)
	r.Written = n
	return
}
