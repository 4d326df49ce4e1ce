package streams

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"testing"
)

func Test_NamedReader(t *testing.T) {
	name := tempFile(t, "data")
	f, err := os.Open(name)
	require.NoErrorf(t, err, "Could not open file %s: %v", name, err)

	obj := NewNamedReader(f, f.Name())
	defer obj.Close()

	require.Equal(t, f.Name(), obj.String())
}

func Test_WrappedNamedReader(t *testing.T) {
	name := tempFile(t, "data")
	f, err := os.Open(name)
	require.NoErrorf(t, err, "Could not open file %s: %v", name, err)

	obj1 := NewNamedReader(f, f.Name())
	obj2 := NewSafeReader(obj1)
	obj3 := NewNamedReader(obj2, "demo")
	defer obj3.Close()

	require.Equal(t, "demo->"+f.Name(), obj3.String())
}

func Test_NamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewNamedWriter(f, f.Name())
	defer obj.Close()

	require.Equal(t, f.Name(), obj.String())
}

func Test_WrappedNamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj1 := NewNamedWriter(f, f.Name())
	obj2 := NewSafeWriter(obj1)
	obj3 := NewNamedWriter(obj2, "demo")
	defer obj3.Close()

	require.Equal(t, "demo->"+f.Name(), obj3.String())
}
