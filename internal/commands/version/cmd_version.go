package version

import (
	"fmt"
	"github.com/bokysan/base57"
	"github.com/bokysan/base57/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details of the binary
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (c *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	c.PrintVersion()
	c.line("Alphabet", base57.Alphabet)
	c.line("Author", "Bojan Cekrlic <github.com/bokysan>")
	if version.GitTag != "" {
		c.line("Git tag", version.GitTag)
	}
	if version.GitBranch != "" {
		c.line("Git branch", version.GitBranch)
	}
	if version.GitState != "" {
		c.line("Git state", version.GitState)
	}
	if version.GoVersion != "" {
		c.line("Go version", version.GoVersion)
	}
	return nil
}

func (c *Command) line(label, value string) {
	fmt.Fprintf(c.out, DarkGray+" %-11s "+White+"%+v"+Reset+"\n", label, value)
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) PrintVersion() {
	fmt.Fprintf(c.out, Bold+BackgroundBlue+
		LightGray+" BASE57 - binary to text codec "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
