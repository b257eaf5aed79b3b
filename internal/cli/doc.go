// Package cli handles command-line argument parsing for the nbuild binary.
package cli
