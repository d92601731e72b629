// Package config defines the meterd server configuration.
//
// Configuration is a plain struct tree with koanf tags, loaded by
// internal/infra/confloader from defaults, an optional YAML file, and
// METERD_-prefixed environment variables. Verify rejects invalid
// combinations before the process binds its listener.
package config
