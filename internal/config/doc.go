// Package config defines the configuration model for a compiler invocation:
// a tree of typed option groups, each carrying an explicit static field table
// that maps every field to its CLI flag name and, where needed, a bound
// serializer. The tables are what the flattening engine walks; there is no
// runtime reflection anywhere in the pipeline.
//
// A Config is immutable from the engine's point of view. The builder works
// on a derived copy produced by Clean, so a loaded configuration stays valid
// for inspection after serialization.
package config
