// Package config loads client configuration from layered sources:
// built-in defaults, an optional JSON file (-c/-config), environment
// variables (APOMIND_*), and command-line flags. Later sources win.
package config
