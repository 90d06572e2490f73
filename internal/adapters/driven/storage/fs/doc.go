// Package fs provides a filesystem-backed implementation of the
// DocumentStore driven port.
//
// Documents are plain markdown files on disk. The store keeps no state
// of its own: every call goes straight to the filesystem, so CLI runs
// and external editors always see current content.
//
// Hidden files and directories (dot-prefixed) are ignored when listing,
// matching the usual shell glob behavior for documentation trees.
package fs
