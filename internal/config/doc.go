// Package config defines shared settings for the build tool binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The settings file is optional: when it is absent, defaults apply and the
// tools run with zero setup.
package config
