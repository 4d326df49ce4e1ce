package base57

import (
	"fmt"
	"github.com/pkg/errors"
)

// Reason tells why decoding stopped.
type Reason uint8

const (
	// NoInput means all input has been consumed and decoded.
	NoInput Reason = iota
	// ControlSymbol means decoding stopped in front of a control byte, conventionally a terminator.
	ControlSymbol
	// InvalidSymbol means decoding stopped in front of a byte which is neither a digit, a delimiter nor
	// a control byte.
	InvalidSymbol
	// Overflow means a group encodes a value which does not fit into the number of bytes it stands for.
	Overflow
	// Truncated means the input ended with a number of digits no group length maps to.
	Truncated
)

// Sentinels matched by a *CorruptInputError with errors.Is, one per failing Reason.
var (
	// ErrControlSymbol matches a ControlSymbol failure.
	ErrControlSymbol = errors.New("base57: control symbol")
	// ErrInvalidSymbol matches an InvalidSymbol failure.
	ErrInvalidSymbol = errors.New("base57: invalid symbol")
	// ErrOverflow matches an Overflow failure.
	ErrOverflow = errors.New("base57: overflow")
	// ErrTruncated matches a Truncated failure.
	ErrTruncated = errors.New("base57: truncated input")
)

func (r Reason) String() string {
	switch r {
	case NoInput:
		return "no input"
	case ControlSymbol:
		return "control symbol"
	case InvalidSymbol:
		return "invalid symbol"
	case Overflow:
		return "overflow"
	case Truncated:
		return "truncated"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ControlSymbol:
		return ErrControlSymbol
	case InvalidSymbol:
		return ErrInvalidSymbol
	case Overflow:
		return ErrOverflow
	case Truncated:
		return ErrTruncated
	default:
		return nil
	}
}

// CorruptInputError describes where and why decoding failed. Offset is the position of the offending
// byte for symbol errors and the number of consumed bytes otherwise.
type CorruptInputError struct {
	Reason Reason
	Offset int
	Symbol byte
}

func (e *CorruptInputError) Error() string {
	if e.Reason == ControlSymbol || e.Reason == InvalidSymbol {
		return fmt.Sprintf("illegal base57 data: %v 0x%02X at input byte %d", e.Reason, e.Symbol, e.Offset)
	}
	return fmt.Sprintf("illegal base57 data: %v at input byte %d", e.Reason, e.Offset)
}

// Unwrap returns one of the Err* sentinels so that errors.Is can be used on the reason.
func (e *CorruptInputError) Unwrap() error {
	return e.Reason.sentinel()
}

func newCorruptInputError(reason Reason, offset int, symbol byte) error {
	return errors.WithStack(&CorruptInputError{
		Reason: reason,
		Offset: offset,
		Symbol: symbol,
	})
}

func symbolReason(c Class) Reason {
	if c == Control {
		return ControlSymbol
	}
	return InvalidSymbol
}
