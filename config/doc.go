// Package config loads the optional user configuration file for the sst
// CLI: default render width, pager command, and log level/format, read
// from ~/.config/sst/config.yaml with github.com/goccy/go-yaml.
//
// This is an ambient concern, not core engineering (spec.md §1): the file
// is entirely optional, every field has a built-in default, and a missing
// or absent file is not an error.
package config
