// Package config loads, normalizes, and validates the cinefuse
// configuration file.
//
// Configuration is TOML, searched at ~/.config/cinefuse/config.toml and
// then ./cinefuse.toml unless an explicit path is given. All values
// have working defaults; validation failures are fatal at startup,
// before any record is processed.
package config
