package uuid

import (
	"fmt"
	"github.com/bokysan/base57"
	"github.com/bokysan/base57/internal/logging"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"io"
	"os"
)

// Command converts UUIDs to and from their 22 symbol base57 form
type Command struct {
	Decode bool `yaml:"decode" short:"d" long:"decode" env:"BASE57_UUID_DECODE" description:"Convert base57 UUIDs back to the canonical form"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: os.Stdout,
	}
}

func (c *Command) String() string {
	return "Convert UUIDs"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run(args)
}

// Run prints one converted UUID per line. Without arguments a new random UUID is encoded. Arguments which
// do not convert are skipped and reported together once all the others have been printed.
func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		if c.Decode {
			return errors.New("Nothing to decode")
		}
		args = []string{uuid.New().String()}
	}

	var result *multierror.Error
	for _, arg := range args {
		converted, err := c.convert(arg)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if _, err := fmt.Fprintln(c.out, converted); err != nil {
			return errors.WithStack(err)
		}
	}
	return result.ErrorOrNil()
}

func (c *Command) convert(arg string) (string, error) {
	if c.Decode {
		u, err := base57.DecodeUUID(arg)
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}

	u, err := uuid.Parse(arg)
	if err != nil {
		return "", errors.Wrapf(err, "Invalid UUID %q", arg)
	}
	return base57.EncodeUUID(u), nil
}
