package util

import (
	"bou.ke/monkey"
	"errors"
	"github.com/bokysan/base57"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes the tests run one after another, as os.Exit is monkey-patched in memory.
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function undoes the patch.
func patchExit(t *testing.T) (exitCode *int, unpatch func()) {
	seqMutex.Lock()

	code := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		code = i
	})
	return &code, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, unpatch := patchExit(t)
	defer unpatch()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit exited the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, unpatch := patchExit(t)
	defer unpatch()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, unpatch := patchExit(t)
	defer unpatch()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp, Message: "Usage"})

	require.Equal(t, 0, *exitCode, "Help should exit with 0")
}

func Test_MustErrorNilOrExit_CorruptInput(t *testing.T) {
	exitCode, unpatch := patchExit(t)
	defer unpatch()

	_, err := base57.DecodeString("Z!")
	require.Error(t, err)

	MustErrorNilOrExit(pkgerrors.Wrapf(err, "Could not decode %v", "stdin"))

	require.Equal(t, ErrCorruptInput, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, unpatch := patchExit(t)
	defer unpatch()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
	require.Equal(t, int(flags.ErrRequired), ExitCode(pkgerrors.WithStack(&flags.Error{Type: flags.ErrRequired})))
}
