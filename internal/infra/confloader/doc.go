// Package confloader provides configuration loading for meterd.
//
// Configuration merges three sources with increasing priority:
//
//  1. Compiled-in defaults (config.Default)
//  2. An optional YAML configuration file
//  3. Environment variables with the METERD_ prefix
//
// The package also provides an fsnotify-based Watcher so a running
// process can react to configuration file edits (meterd reloads the
// log level this way).
package confloader
