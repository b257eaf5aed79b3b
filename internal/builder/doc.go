/*
Package builder converts a configuration tree into the ordered command-line
argument list for the compiler.

The conversion has two layers:

 1. Flatten is the generic engine: a deterministic depth-first pre-order walk
    over the static field tables, consulting each field's bound serializer or
    the type-dispatched fallback. It never visits a field twice.

 2. Build wraps Flatten with the hand-coded special cases that the per-field
    model cannot express: the mutually-exclusive packaging-mode flags, the
    --run flag extracted from the post-compile group, free-form extra
    arguments, and the trailing entry-file positional.

Both layers are pure: they read the configuration, never mutate it, and the
same input always produces the same argument list.
*/
package builder
