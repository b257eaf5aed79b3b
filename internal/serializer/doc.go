// Package serializer contains the pure fragment producers that turn a single
// typed configuration value into zero or more command-line argument tokens.
//
// Each serializer only guarantees the syntactic shape of its fragments; none
// of them validate that the downstream compiler accepts the resulting flag.
// Handing a serializer a value of the wrong kind fails fast with a typed
// *InvalidValueError naming the flag, rather than producing garbage output.
package serializer
