package builder

import "github.com/vk/nbuild/internal/config"

// Build turns a configuration into the complete ordered argument list for
// the compiler. The irregular fields are emitted manually around a generic
// flattening pass over a cleaned copy, in this fixed order: packaging mode
// flag, --run, all generically-flattened fragments, free-form extras, and
// the entry file as the trailing positional argument.
func Build(cfg *config.Config) ([]string, error) {
	var args []string

	// Mode first: downstream tools expect mode-selecting flags before
	// option flags. A literal override wins over the symbolic constant; the
	// accelerated sentinel leaves the decision to the compiler.
	switch {
	case cfg.ModeFlag != "":
		args = append(args, "--"+cfg.ModeFlag)
	case cfg.Mode != "" && cfg.Mode != config.ModeAccelerated:
		args = append(args, "--"+cfg.Mode.ChoiceValue())
	}

	if cfg.PostCompile != nil && cfg.PostCompile.Run {
		args = append(args, "--run")
	}

	// The generic pass runs over a derived copy with the fields above
	// neutralized, so none of them can be emitted a second time.
	flat, err := Flatten(cfg.Clean())
	if err != nil {
		return nil, err
	}
	args = append(args, flat...)

	args = append(args, cfg.Extras.Args()...)

	if cfg.Entry != "" {
		args = append(args, cfg.Entry.Slash())
	}
	return args, nil
}
