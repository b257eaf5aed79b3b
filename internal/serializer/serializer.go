package serializer

import (
	"fmt"
	"strconv"
)

// Choice is implemented by enumeration types whose underlying string value is
// what the compiler expects on the command line.
type Choice interface {
	ChoiceValue() string
}

// Pathlike is implemented by path types that can render themselves in
// normalized forward-slash form.
type Pathlike interface {
	Slash() string
}

// Func produces zero or more argument fragments from a single field value.
type Func func(value any) ([]string, error)

// InvalidValueError reports a value whose kind does not match the serializer
// it was handed to.
type InvalidValueError struct {
	Flag  string
	Value any
}

// Error implements the error interface for InvalidValueError.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v (%T) for flag %q", e.Value, e.Value, e.Flag)
}

// BoolFlag returns a serializer that emits the bare flag for true and nothing
// for false or nil.
func BoolFlag(flag string) Func {
	return func(value any) ([]string, error) {
		switch v := value.(type) {
		case nil:
			return nil, nil
		case bool:
			if v {
				return []string{"--" + flag}, nil
			}
			return nil, nil
		default:
			return nil, &InvalidValueError{Flag: flag, Value: value}
		}
	}
}

// EnumFlag returns a serializer that emits --flag=<value> for a single choice
// constant (or plain string).
func EnumFlag(flag string) Func {
	return func(value any) ([]string, error) {
		switch v := value.(type) {
		case nil:
			return nil, nil
		case Choice:
			return []string{"--" + flag + "=" + v.ChoiceValue()}, nil
		case string:
			return []string{"--" + flag + "=" + v}, nil
		default:
			return nil, &InvalidValueError{Flag: flag, Value: value}
		}
	}
}

// Iterable returns a serializer that emits one --flag=<element> fragment per
// element, preserving order. An empty or nil sequence emits nothing. The
// transform defaults to choice/path-aware rendering.
func Iterable(flag string, transform func(any) string) Func {
	if transform == nil {
		transform = Render
	}
	return func(value any) ([]string, error) {
		elems, err := elements(flag, value)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, e := range elems {
			out = append(out, "--"+flag+"="+transform(e))
		}
		return out, nil
	}
}

// Direct returns a serializer that emits the value itself as a bare flag:
// --<value>, with no flag name of its own.
func Direct() Func {
	return func(value any) ([]string, error) {
		switch v := value.(type) {
		case nil:
			return nil, nil
		case Choice:
			return []string{"--" + v.ChoiceValue()}, nil
		case string:
			return []string{"--" + v}, nil
		default:
			return nil, &InvalidValueError{Flag: "", Value: value}
		}
	}
}

// Generic is the fallback used for fields without a bound serializer. It
// dispatches on the kind of the value.
func Generic(flag string, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return BoolFlag(flag)(v)
	case Choice:
		return EnumFlag(flag)(v)
	case Pathlike:
		return []string{"--" + flag + "=" + v.Slash()}, nil
	case []string, []any:
		return Iterable(flag, nil)(v)
	case string:
		return []string{"--" + flag + "=" + v}, nil
	case int:
		return []string{"--" + flag + "=" + strconv.Itoa(v)}, nil
	default:
		return nil, &InvalidValueError{Flag: flag, Value: value}
	}
}

// Render converts a single sequence element to its command-line form.
func Render(e any) string {
	switch v := e.(type) {
	case Choice:
		return v.ChoiceValue()
	case Pathlike:
		return v.Slash()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// elements normalizes the supported sequence kinds into a single []any.
func elements(flag string, value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	default:
		return nil, &InvalidValueError{Flag: flag, Value: value}
	}
}
