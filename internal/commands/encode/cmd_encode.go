package encode

import (
	"github.com/bokysan/base57"
	"github.com/bokysan/base57/internal/logging"
	"github.com/bokysan/base57/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command encodes the concatenation of its input files
type Command struct {
	Output  string `yaml:"output"  short:"o" long:"output"  env:"BASE57_OUTPUT"  description:"Write the encoded text to this file instead of stdout"`
	Newline bool   `yaml:"newline" short:"n" long:"newline" env:"BASE57_NEWLINE" description:"End the encoded text with a newline"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode files to base57"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run(args)
}

// Run encodes the named files, or stdin if there are none, one after another as a single stream
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

	enc := base57.NewEncoder(out)
	n, err := io.CopyBuffer(enc, streams.Concat(inputs), make([]byte, streams.BufferSize))
	if err != nil {
		return errors.Wrapf(err, "Could not encode %v to %v", inputs, out)
	}
	if err = enc.Close(); err != nil {
		return errors.Wrapf(err, "Could not write to %v", out)
	}
	if c.Newline {
		if _, err = out.Write([]byte{'\n'}); err != nil {
			return errors.Wrapf(err, "Could not write to %v", out)
		}
	}

	log.Debugf("Encoded %d bytes from %v into %d symbols", n, inputs, base57.EncodedLen(int(n)))
	return nil
}
