package builder

import (
	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/serializer"
)

// Flatten walks a group's field table depth-first in declaration order and
// returns the argument fragments of every populated field. Nested groups
// expand in place, so their fragments stay contiguous at the position of the
// nesting field. Serialization of a field depends only on its own table
// entry; no sibling or parent state is consulted.
func Flatten(g config.Group) ([]string, error) {
	var out []string
	for _, f := range g.Fields() {
		if f.Value == nil {
			continue
		}
		if f.Emit != nil {
			frags, err := f.Emit(f.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, frags...)
			continue
		}
		if sub, ok := f.Value.(config.Group); ok {
			frags, err := Flatten(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, frags...)
			continue
		}
		frags, err := serializer.Generic(f.CLIName(), f.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, frags...)
	}
	return out, nil
}
