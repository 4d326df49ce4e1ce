package serve

import (
	"github.com/bokysan/base57/internal/logging"
	"github.com/bokysan/base57/internal/server"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP encoding service
type Command struct {
	Listen      string `yaml:"listen"      short:"l" long:"listen"        env:"BASE57_LISTEN"        description:"Address to listen on (default :8057)"`
	MaxBodySize int64  `yaml:"maxBodySize"           long:"max-body-size" env:"BASE57_MAX_BODY_SIZE" description:"Largest accepted request body in bytes (default 10MiB)"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "HTTP service"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return c.Run(interrupted)
}

// Run serves until a signal arrives on the channel or the server fails
func (c *Command) Run(interrupted <-chan os.Signal) error {
	srv := server.NewHttpServer(c.Listen, c.MaxBodySize)
	if err := srv.Startup(); err != nil {
		return err
	}

	select {
	case err := <-srv.Done():
		return err
	case sig := <-interrupted:
		log.Infof("Received %v, graceful server shutdown...", sig)
	}

	var errs error
	if err := srv.Shutdown(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := <-srv.Done(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
