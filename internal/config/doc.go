// Package config loads the editor configuration from TOML and watches it
// for live reload.
//
// The file is optional: a missing config yields the built-in defaults.
// The special-markup expansion table is order-sensitive — entries are kept
// in file order, which is the order un-expansion consults them in.
package config
