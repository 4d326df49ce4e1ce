package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type encodeOptions struct {
	Output  string `yaml:"output"  long:"output"`
	Newline bool   `yaml:"newline" long:"newline"`
}

func newParser(t *testing.T) (*flags.Parser, *encodeOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	data := &encodeOptions{}
	_, err := parser.AddCommand("encode", "Encode", "Encode options", data)
	require.NoErrorf(t, err, "Could not add encode command")
	return parser, data
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	err := NewYamlParser(parser).ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/encode.yml"
	parser, data := newParser(t)

	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "encoded.txt", data.Output, "Invalid reading of string value")
	require.True(t, data.Newline, "Invalid reading of boolean value")
}

func Test_LayeredDocuments(t *testing.T) {
	file := "testdata/layered.yml"
	parser, data := newParser(t)

	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "second.txt", data.Output, "Later documents should override earlier ones")
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"
	parser, _ := newParser(t)

	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
	require.Contains(t, err.Error(), "transcode")
}

func Test_InvalidYaml(t *testing.T) {
	file := "testdata/invalid_yaml.yml"
	parser, _ := newParser(t)

	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _ := newParser(t)

	err := NewYamlParser(parser).ParseFile("testdata/missing.yml")
	require.Error(t, err)
}

func Test_ParseReader(t *testing.T) {
	parser, data := newParser(t)

	err := NewYamlParser(parser).Parse(strings.NewReader("encode:\n  output: from-reader.txt\n"))
	require.NoError(t, err)
	require.Equal(t, "from-reader.txt", data.Output)
	require.False(t, data.Newline)
}
