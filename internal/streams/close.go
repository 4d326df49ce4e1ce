package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// BufferSize is the size of the buffer used when copying between an input and an output
const BufferSize = 32 * 1024

// LogClose closes the stream, logs the failure if there is one and returns it. Streams which report
// being closed already are skipped.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok && c.Closed() {
		return nil
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	return nil
}

// nopCloser keeps the process' standard streams open when the wrapping stream is closed
type nopCloser struct {
	io.Reader
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
