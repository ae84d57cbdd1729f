// Package manifest persists scanned build manifests as YAML files.
//
// It mirrors the repository pattern used elsewhere in the project: a small
// Repository interface with a file-backed implementation and an ErrNotFound
// sentinel for the missing-file case.
package manifest
