package util

import (
	"github.com/bokysan/base57"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrCorruptInput is the exit code for input which is not valid base57
	ErrCorruptInput = 65
	// ErrGeneric is the exit code for all other failures
	ErrGeneric = 99
)

// ExitCode maps an error to the process exit code. Errors of the flags package keep their own type as
// the code, undecodable input exits with ErrCorruptInput and the rest with ErrGeneric.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	var corrupt *base57.CorruptInputError
	if errors.As(err, &corrupt) {
		return ErrCorruptInput
	}

	return ErrGeneric
}

// MustErrorNilOrExit returns if err is nil. Otherwise it logs the error at fatal level and exits with
// the code ExitCode gives for it. A request for help exits quietly with 0.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
