// Package inspector implements the build-inspector workflow: scan a build
// directory, print a deterministic report of installed addons and their
// declared dependencies, and optionally export the manifest as YAML.
package inspector
