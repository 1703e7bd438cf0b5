package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/semports/errors"
	"github.com/c360/semports/types"
)

// VectorSeparator separates elements of the built-in slice conversions.
const VectorSeparator = ';'

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func registerBuiltins(r *Registry) {
	builtin(r, func(text string) (string, error) { return text, nil }, func(s string) string { return s })
	builtin(r, parseBool, strconv.FormatBool)

	builtin(r, parseSigned[int](strconv.IntSize), formatSigned[int])
	builtin(r, parseSigned[int8](8), formatSigned[int8])
	builtin(r, parseSigned[int16](16), formatSigned[int16])
	builtin(r, parseSigned[int32](32), formatSigned[int32])
	builtin(r, parseSigned[int64](64), formatSigned[int64])

	builtin(r, parseUnsigned[uint](strconv.IntSize), formatUnsigned[uint])
	builtin(r, parseUnsigned[uint8](8), formatUnsigned[uint8])
	builtin(r, parseUnsigned[uint16](16), formatUnsigned[uint16])
	builtin(r, parseUnsigned[uint32](32), formatUnsigned[uint32])
	builtin(r, parseUnsigned[uint64](64), formatUnsigned[uint64])

	builtin(r, parseFloat32, func(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) })
	builtin(r, parseFloat64, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })

	builtin(r, parseVector(parseSigned[int](strconv.IntSize), "[]int"), formatVector(formatSigned[int]))
	builtin(r, parseVector(parseFloat64, "[]float64"), formatVector(func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}))

	builtin(r, types.ParseNodeStatus, types.NodeStatus.String)
	builtin(r, types.ParseNodeType, types.NodeType.String)
	builtin(r, types.ParsePortDirection, types.PortDirection.String)
}

// builtin registers a parser and renderer pair on a fresh registry.
func builtin[T any](r *Registry, parse func(string) (T, error), format func(T) string) {
	if err := Register(r, parse); err != nil {
		panic(err)
	}
	if err := RegisterRenderer(r, func(v T) (string, error) { return format(v), nil }); err != nil {
		panic(err)
	}
}

func conversionError(text, target string, cause error) error {
	err := fmt.Errorf("%w: %q is not a valid %s", errors.ErrConversion, text, target)
	if cause != nil {
		err = fmt.Errorf("%w: %v", err, cause)
	}
	return errors.WrapInvalid(err, "Converter", "Parse", "text conversion")
}

func parseBool(text string) (bool, error) {
	switch text {
	case "1", "true", "TRUE":
		return true, nil
	case "0", "false", "FALSE":
		return false, nil
	}
	return false, conversionError(text, "bool", nil)
}

func parseSigned[T signed](bits int) func(string) (T, error) {
	return func(text string) (T, error) {
		n, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return 0, conversionError(text, fmt.Sprintf("%T", T(0)), numError(err))
		}
		return T(n), nil
	}
}

func parseUnsigned[T unsigned](bits int) func(string) (T, error) {
	return func(text string) (T, error) {
		n, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return 0, conversionError(text, fmt.Sprintf("%T", T(0)), numError(err))
		}
		return T(n), nil
	}
}

func parseFloat32(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, conversionError(text, "float32", numError(err))
	}
	return float32(f), nil
}

func parseFloat64(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, conversionError(text, "float64", numError(err))
	}
	return f, nil
}

// numError strips the strconv prefix that repeats the input text.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func parseVector[T any](parse func(string) (T, error), target string) func(string) ([]T, error) {
	return func(text string) ([]T, error) {
		if text == "" {
			return nil, conversionError(text, target, fmt.Errorf("empty list"))
		}
		parts := SplitString(text, VectorSeparator)
		out := make([]T, 0, len(parts))
		for i, part := range parts {
			v, err := parse(part)
			if err != nil {
				return nil, conversionError(text, target, fmt.Errorf("element %d (%q) rejected", i, part))
			}
			out = append(out, v)
		}
		return out, nil
	}
}

func formatSigned[T signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUnsigned[T unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatVector[T any](format func(T) string) func([]T) string {
	return func(vs []T) string {
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = format(v)
		}
		return strings.Join(parts, string(VectorSeparator))
	}
}
