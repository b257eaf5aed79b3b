package config

import (
	"strings"

	"github.com/vk/nbuild/internal/serializer"
)

// Path is a filesystem path rendered in normalized forward-slash form on the
// command line, regardless of host conventions.
type Path string

// Slash implements serializer.Pathlike. Backslashes are rewritten on every
// host, not only on Windows, so the emitted form is host-independent.
func (p Path) Slash() string {
	return strings.ReplaceAll(string(p), `\`, "/")
}

// Group is a named, ordered record of configuration fields. Groups may nest
// other groups; nesting expands in place during flattening.
type Group interface {
	// Fields returns the group's field table in declaration order. The order
	// is significant: it fixes the relative order of emitted fragments.
	Fields() []Field
}

// Field is one entry of a group's static field table. It carries everything
// the flattening engine needs, replacing any runtime introspection.
type Field struct {
	// Name is the programmatic identifier of the field.
	Name string
	// Flag is the CLI flag name the field maps to. When empty, the flag name
	// is derived from Name.
	Flag string
	// Emit is a bound serializer. When set, it alone decides the fragments;
	// Flag and the generic dispatch are not consulted.
	Emit serializer.Func
	// Value is the field's current value. nil means absent: the field emits
	// nothing at all.
	Value any
}

// CLIName returns the effective flag name: the explicit Flag, or the Name
// with underscores replaced by dashes.
func (f Field) CLIName() string {
	if f.Flag != "" {
		return f.Flag
	}
	return strings.ReplaceAll(f.Name, "_", "-")
}

// optString boxes a string so the empty string reads as absent.
func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optPath boxes a Path so the empty path reads as absent.
func optPath(p Path) any {
	if p == "" {
		return nil
	}
	return p
}

// optInt boxes an int so zero reads as absent; the downstream default applies.
func optInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// optChoice boxes a choice so the empty constant reads as absent.
func optChoice[C ~string](c C) any {
	if c == "" {
		return nil
	}
	return c
}

// strSeq boxes a string slice so an empty sequence reads as absent.
func strSeq(v []string) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

// seq boxes a slice of paths or choices so an empty sequence reads as absent.
func seq[E any](v []E) any {
	if len(v) == 0 {
		return nil
	}
	out := make([]any, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

// groupField builds a nested-group table entry, reading a nil group pointer
// as absent.
func groupField[G any](name string, g *G) Field {
	if g == nil {
		return Field{Name: name}
	}
	return Field{Name: name, Value: g}
}
