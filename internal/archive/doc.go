// Package archive writes deflate-compressed ZIP files from a set of
// filesystem items, preserving paths relative to a build root, and provides
// the checksum helper used to fingerprint archived files.
package archive
