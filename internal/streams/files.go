package streams

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"io"
	"os"
)

// StdStream is the file name which stands for standard input or standard output
const StdStream = "-"

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// OpenInput opens the named file for reading. StdStream and the empty name open standard input, which is
// not closed when the returned reader is.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StdStream {
		return NewNamedReader(nopCloser{Reader: stdin}, "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedReader(f, name), nil
}

// OpenInputs opens all the named files. No names means standard input. Every file is tried, so the returned
// error lists all the files which could not be opened; the ones which could are closed again in that case.
func OpenInputs(names []string) ([]*NamedReader, error) {
	if len(names) == 0 {
		names = []string{StdStream}
	}

	var result *multierror.Error
	inputs := make([]*NamedReader, 0, len(names))
	for _, name := range names {
		r, err := OpenInput(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		inputs = append(inputs, r)
	}

	if err := result.ErrorOrNil(); err != nil {
		CloseInputs(inputs)
		return nil, err
	}
	return inputs, nil
}

// CloseInputs closes all the inputs, logging the ones which fail
func CloseInputs(inputs []*NamedReader) {
	for _, r := range inputs {
		_ = r.Close()
	}
}

// Concat returns a reader which reads the inputs one after another
func Concat(inputs []*NamedReader) io.Reader {
	readers := make([]io.Reader, len(inputs))
	for i, r := range inputs {
		readers[i] = r
	}
	return io.MultiReader(readers...)
}

// CreateOutput creates or truncates the named file. StdStream and the empty name stand for standard
// output, which is not closed when the returned writer is.
func CreateOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StdStream {
		return NewNamedWriter(nopCloser{Writer: stdout}, "stdout"), nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedWriter(f, name), nil
}
