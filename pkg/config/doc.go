// Package config handles configuration management for emailnotify.
// It loads a TOML, YAML or JSON file layered over built-in defaults,
// a .env file and EMAILNOTIFY_ environment variables, and decodes the
// templates, items and users sections leniently so one bad entry does not
// stop the rest from being used.
package config
