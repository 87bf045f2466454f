// Package conf loads settings for the bunch command line tools.
//
// # Load Order
//
// Settings are applied in three layers:
//
//  1. Embedded defaults (default.toml)
//  2. Main config file, by default $XDG_CONFIG_HOME/bunch/config.toml
//  3. Drop-in files in the directory named after the main file with a
//     ".d" suffix, in lexicographic order
//
// Drop-ins may be TOML (".toml") or bunch documents (".bunch"). Keys are
// the same in both: a bunch drop-in reads
//
//	log-level = 'DEBUG'
//	indent = '\t'
//
// Each layer only overrides the settings it names. Files are decoded into
// a DTO with pointer fields so that "not set" and "set to the zero value"
// stay distinct.
package conf
