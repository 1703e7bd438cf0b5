package component

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/types"
	"github.com/c360/semports/value"
)

// PortDirectives represents a parsed port struct tag
type PortDirectives struct {
	Direction   types.PortDirection
	Name        string // empty means derive from the json tag or field name
	Description string
	Default     string
	HasDefault  bool
	Untyped     bool
}

// ParsePortTag parses a port struct tag.
//
// Tag syntax:
//   - the direction flag comes first: input, output or inout (required)
//   - key-value pairs use a colon: name:msec, description:Sleep time
//   - untyped is a boolean flag that binds the port to no type
//   - default takes the rest of the tag verbatim, so it must come last and
//     may contain commas and colons
//
// Example tags:
//
//	port:"input,name:msec,description:Milliseconds to wait,default:1000"
//	port:"output,description:Final pose"
//	port:"inout,untyped"
func ParsePortTag(tag string) (PortDirectives, error) {
	directives := PortDirectives{}

	if strings.TrimSpace(tag) == "" {
		return directives, errors.WrapInvalid(
			fmt.Errorf("empty port tag"),
			"PortTag", "ParsePortTag", "tag validation",
		)
	}

	// default swallows everything after it; only a directive boundary
	// starts it, so descriptions may mention "default:" freely
	const defaultKey = "default:"
	if strings.HasPrefix(tag, defaultKey) {
		directives.Default = tag[len(defaultKey):]
		directives.HasDefault = true
		tag = ""
	} else if idx := strings.Index(tag, ","+defaultKey); idx >= 0 {
		directives.Default = tag[idx+1+len(defaultKey):]
		directives.HasDefault = true
		tag = tag[:idx]
	}

	directionSet := false
	for i, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if !strings.Contains(part, ":") {
			if dir, ok := parseDirectionFlag(part); ok {
				if i != 0 || directionSet {
					return directives, errors.WrapInvalid(
						fmt.Errorf("direction %q must be the first directive", part),
						"PortTag", "ParsePortTag", "direction placement",
					)
				}
				directives.Direction = dir
				directionSet = true
				continue
			}
			if part == "untyped" {
				directives.Untyped = true
				continue
			}
			return directives, errors.WrapInvalid(
				fmt.Errorf("unknown flag: %s", part),
				"PortTag", "ParsePortTag", "flag parsing",
			)
		}

		if err := parsePortKeyValue(part, &directives); err != nil {
			return directives, err
		}
	}

	if !directionSet {
		return directives, errors.WrapInvalid(
			fmt.Errorf("direction flag is required"),
			"PortTag", "ParsePortTag", "required field validation",
		)
	}
	if directives.Untyped && directives.HasDefault {
		return directives, errors.WrapInvalid(
			fmt.Errorf("untyped ports cannot carry a default"),
			"PortTag", "ParsePortTag", "default validation",
		)
	}

	return directives, nil
}

func parseDirectionFlag(flag string) (types.PortDirection, bool) {
	switch flag {
	case "input":
		return types.PortDirectionInput, true
	case "output":
		return types.PortDirectionOutput, true
	case "inout":
		return types.PortDirectionInOut, true
	default:
		return 0, false
	}
}

func parsePortKeyValue(part string, directives *PortDirectives) error {
	kv := strings.SplitN(part, ":", 2)
	key := strings.TrimSpace(kv[0])
	val := strings.TrimSpace(kv[1])

	if val == "" {
		return errors.WrapInvalid(
			fmt.Errorf("empty value for directive: %s", key),
			"PortTag", "parsePortKeyValue", "value validation",
		)
	}

	switch key {
	case "name":
		directives.Name = val
	case "description":
		directives.Description = val
	default:
		return errors.WrapInvalid(
			fmt.Errorf("unknown directive: %s", key),
			"PortTag", "parsePortKeyValue", "directive validation",
		)
	}
	return nil
}

// GeneratePorts builds a port list from the port tags of a struct type.
// Each tagged field becomes a port bound to the field's type; default text
// is parsed with r, or convert.Default() when r is nil.
//
//	type SleepConfig struct {
//	    Msec uint `json:"msec" port:"input,description:Milliseconds to wait"`
//	}
//
//	ports, err := component.GeneratePorts(reflect.TypeFor[SleepConfig](), nil)
//
// Every malformed tag, bad name and unparsable default is reported.
func GeneratePorts(structType reflect.Type, r *convert.Registry) (port.List, error) {
	if structType == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidData, "PortTag", "GeneratePorts", "type validation")
	}
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s is not a struct", errors.ErrInvalidData, structType),
			"PortTag", "GeneratePorts", "type validation")
	}
	if r == nil {
		r = convert.Default()
	}

	builder := port.NewBuilder()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tag, ok := field.Tag.Lookup("port")
		if !ok || !field.IsExported() {
			continue
		}
		builder.Add(portFromField(field, tag, r))
	}

	list, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "PortTag", "GeneratePorts", structType.String())
	}
	return list, nil
}

func portFromField(field reflect.StructField, tag string, r *convert.Registry) (port.Entry, error) {
	directives, err := ParsePortTag(tag)
	if err != nil {
		return port.Entry{}, errors.Wrap(err, "PortTag", "GeneratePorts", "field "+field.Name)
	}

	name := directives.Name
	if name == "" {
		name = fieldPortName(field)
	}

	t := field.Type
	if directives.Untyped {
		t = reflect.TypeFor[port.AnyTypeAllowed]()
	}

	var def value.Value
	if directives.HasDefault {
		def, err = r.Parse(t, directives.Default)
		if err != nil {
			return port.Entry{}, errors.Wrap(err, "PortTag", "GeneratePorts", "default of field "+field.Name)
		}
	}

	return port.CreateFromType(t, directives.Direction, name, directives.Description, def, port.WithRegistry(r))
}

// fieldPortName uses the json name when present, else the Go field name.
func fieldPortName(field reflect.StructField) string {
	if jsonTag := field.Tag.Get("json"); jsonTag != "" && jsonTag != "-" {
		if name := strings.Split(jsonTag, ",")[0]; name != "" {
			return name
		}
	}
	return field.Name
}
