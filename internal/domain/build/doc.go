// Package build contains the domain model of a media-center build directory:
// addon records with their declared dependencies, the userdata listing, and
// the scanner that assembles them from the filesystem.
//
// A build root is a directory with an optional addons/ subdirectory (one
// subdirectory per addon, each carrying an addon.xml manifest) and an
// optional userdata/ subdirectory. Absence of any of these is an expected
// condition, not an error.
package build
