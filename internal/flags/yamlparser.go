package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser fills the options of a flags.Parser from a YAML file instead of an INI one. Every top level
// key names a command or a group of the parser; its value is unmarshalled into that command's options.
//
//	encode:
//	  output: out.txt
//	serve:
//	  listen: :8057
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses the options from a YAML file. Paths referenced from the file are resolved relative to it.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads the YAML documents from the reader one after another. Documents are separated by `---`; a
// later document overrides the values set by an earlier one.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		if val == nil {
			continue
		}

		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		data := commandData(command)
		if data == nil {
			return errors.Errorf("Command '%s' takes no options", name)
		}

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Invalid options for '%s'", name)
		}
	}
	return nil
}

// commandData digs out the options struct a command was registered with. The flags package keeps it in an
// unexported field of the group, so it is read through reflection.
func commandData(command *flags.Command) interface{} {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	field := group.FieldByName("data")
	if !field.IsValid() {
		return nil
	}
	field = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	if field.IsNil() {
		return nil
	}
	return field.Interface()
}
