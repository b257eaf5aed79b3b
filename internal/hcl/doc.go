// Package hcl is the primary spec-file binding: it parses an HCL build spec
// into the shared patch types and folds it onto the platform defaults. Other
// format bindings (YAML, TOML) live in their own packages behind the same
// config.Loader interface.
package hcl
