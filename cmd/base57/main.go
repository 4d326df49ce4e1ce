package main

import (
	"fmt"
	"github.com/bokysan/base57/internal/args"
	"github.com/bokysan/base57/internal/commands/decode"
	"github.com/bokysan/base57/internal/commands/encode"
	"github.com/bokysan/base57/internal/commands/serve"
	"github.com/bokysan/base57/internal/commands/uuid"
	"github.com/bokysan/base57/internal/commands/version"
	b57Flags "github.com/bokysan/base57/internal/flags"
	"github.com/bokysan/base57/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base57 is the main executable
type Base57 struct {
	parser   *flags.Parser
	commands map[string]interface{}
}

// NewBase57 creates the command line parser with all the commands
func NewBase57() *Base57 {
	executablePath := path.Base(os.Args[0])

	b := &Base57{
		parser:   flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		commands: make(map[string]interface{}),
	}

	b.setupGeneral()
	b.addCommand("encode", "Encode to base57", "Encode files (or stdin) to base57 text", encode.NewCommand())
	b.addCommand("decode", "Decode base57", "Decode base57 text from files (or stdin)", decode.NewCommand())
	b.addCommand("uuid", "Convert UUIDs", "Print UUIDs in their 22 symbol base57 form, or a new random one", uuid.NewCommand())
	b.addCommand("serve", "Run the HTTP service", "Serve POST /encode and POST /decode over HTTP", serve.NewCommand())
	b.addCommand("version", "Print the version", "Print the application version and exit", version.NewCommand())

	return b
}

// setupGeneral will configure general options
func (b *Base57) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (b *Base57) addCommand(name, short, long string, data interface{}) {
	_, err := b.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
	b.commands[name] = data
}

// configure reads the YAML configuration file given with `-c`
func (b *Base57) configure(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return b57Flags.NewYamlParser(b.parser).ParseFile(file)
}

// main parses the command line and runs the selected command
func main() {
	b := NewBase57()
	args.General.ConfigurationFile = b.configure

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
