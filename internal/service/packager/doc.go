// Package packager implements the build-packager workflow: collect a build's
// addon directories (and optionally userdata), archive them into a single
// deflate ZIP with root-relative paths, and optionally write a YAML
// description with per-file checksums for verification after deployment.
package packager
