package decode

import (
	"github.com/bokysan/base57"
	"github.com/bokysan/base57/internal/logging"
	"github.com/bokysan/base57/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command decodes the concatenation of its input files
type Command struct {
	Output string `yaml:"output" short:"o" long:"output" env:"BASE57_OUTPUT" description:"Write the decoded data to this file instead of stdout"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode base57 files"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run(args)
}

// Run decodes the named files, or stdin if there are none, as a single stream. The data decoded before a
// failure is written out before the error is returned.
func (c *Command) Run(names []string) (err error) {
	inputs, err := streams.OpenInputs(names)
	if err != nil {
		return err
	}
	defer streams.CloseInputs(inputs)

	out, err := streams.CreateOutput(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	n, err := io.CopyBuffer(out, base57.NewDecoder(streams.Concat(inputs)), make([]byte, streams.BufferSize))
	if err != nil {
		return errors.Wrapf(err, "Could not decode %v", inputs)
	}

	log.Debugf("Decoded %d bytes from %v", n, inputs)
	return nil
}
