// Package config loads pounce configuration from TOML files and watches
// them for live reload.
package config
