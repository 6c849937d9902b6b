// Package config loads aurochs.yaml, the project configuration used by the
// aurochs command.
//
// Every field has a default, so a project without a configuration file
// behaves exactly like one with an empty file. Values are validated after
// loading; invalid files are reported as E300 errors.
package config
